package skill

import (
	"context"

	"portfolio-cms/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.Skill) (*domain.Skill, error)
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	// ListByPage returns the page's skills ordered by order, then name.
	ListByPage(ctx context.Context, pageID string) ([]domain.Skill, error)
	Update(ctx context.Context, s domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
