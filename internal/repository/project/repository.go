package project

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByPage returns the page's projects, lowest order first.
	ListByPage(ctx context.Context, pageID string) ([]domain.Project, error)
	Update(ctx context.Context, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
