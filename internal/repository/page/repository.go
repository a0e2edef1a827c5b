package page

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p domain.HomePage) (*domain.HomePage, error)
	// Get returns the home page, or domain.ErrNotFound when none exists yet.
	Get(ctx context.Context) (*domain.HomePage, error)
	GetByID(ctx context.Context, id string) (*domain.HomePage, error)
	Update(ctx context.Context, p domain.HomePage) (*domain.HomePage, error)
	// Delete removes the page and every child it owns in one transaction.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
