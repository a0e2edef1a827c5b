package education

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, e domain.Education) (*domain.Education, error)
	GetByID(ctx context.Context, id string) (*domain.Education, error)
	// ListByPage returns the page's education entries, highest order first.
	ListByPage(ctx context.Context, pageID string) ([]domain.Education, error)
	Update(ctx context.Context, e domain.Education) (*domain.Education, error)
	Delete(ctx context.Context, id string) error
}
