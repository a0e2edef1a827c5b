// Package shared holds the checks every content service applies before a write.
package shared

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"portfolio-cms/internal/domain"
)

// PageLookup resolves a home page by id.
type PageLookup interface {
	GetByID(ctx context.Context, id string) (*domain.HomePage, error)
}

// Invalidator drops cached reads after a write.
type Invalidator interface {
	Invalidate()
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate() {}

// NopInvalidator is used when no cache is wired.
var NopInvalidator Invalidator = nopInvalidator{}

// ValidID reports whether id is a well-formed entity id.
func ValidID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// RequirePage returns domain.ErrParentRequired unless pageID names an
// existing home page.
func RequirePage(ctx context.Context, pages PageLookup, pageID string) error {
	if !ValidID(pageID) {
		return domain.ErrParentRequired
	}
	if _, err := pages.GetByID(ctx, pageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrParentRequired
		}
		return err
	}
	return nil
}
