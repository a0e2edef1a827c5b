package domain

import "time"

// Document is a reference to a file held by an external document store.
// Only the reference is stored, never the file bytes.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	FileURL   string    `json:"fileUrl" validate:"required,max=2048"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d Document) Validate() error {
	return validateStruct(d)
}
