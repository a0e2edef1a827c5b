package domain

import "time"

// Education is a training or degree entry. Description is plain text.
type Education struct {
	ID          string    `json:"id"`
	PageID      string    `json:"pageId"`
	Year        string    `json:"year" validate:"max=20"`
	Title       Localized `json:"title" validate:"dive,keys,oneof=fr en,endkeys,max=200"`
	Institution string    `json:"institution" validate:"max=200"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e Education) Validate() error {
	return validateStruct(e)
}
