package domain

import "time"

// Experience is a professional experience entry.
type Experience struct {
	ID          string    `json:"id"`
	PageID      string    `json:"pageId"`
	Year        string    `json:"year" validate:"max=20"`
	Title       Localized `json:"title" validate:"dive,keys,oneof=fr en,endkeys,max=200"`
	Company     string    `json:"company" validate:"max=200"`
	Description Localized `json:"description" validate:"dive,keys,oneof=fr en,endkeys,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e Experience) Validate() error {
	return validateStruct(e)
}
