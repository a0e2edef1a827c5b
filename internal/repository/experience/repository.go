package experience

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, e domain.Experience) (*domain.Experience, error)
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	// ListByPage returns the page's experiences, highest order first.
	ListByPage(ctx context.Context, pageID string) ([]domain.Experience, error)
	Update(ctx context.Context, e domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
