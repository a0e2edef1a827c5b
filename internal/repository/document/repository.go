package document

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, d domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	// Delete removes the document and clears any home page CV reference to it.
	Delete(ctx context.Context, id string) error
}
