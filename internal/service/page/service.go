package page

import (
	"context"
	"errors"
	"strings"

	"portfolio-cms/internal/domain"
	pagerepo "portfolio-cms/internal/repository/page"
	"portfolio-cms/internal/service/shared"
)

type documentLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// Service manages the singleton home page.
type Service struct {
	repo  pagerepo.Repository
	docs  documentLookup
	cache shared.Invalidator
}

// New creates a Service. cache may be nil.
func New(repo pagerepo.Repository, docs documentLookup, cache shared.Invalidator) *Service {
	if cache == nil {
		cache = shared.NopInvalidator
	}
	return &Service{repo: repo, docs: docs, cache: cache}
}

// Create stores the home page. It fails with domain.ErrSingleton when one
// already exists.
func (s *Service) Create(ctx context.Context, p domain.HomePage) (*domain.HomePage, error) {
	clearBlankRefs(&p)
	if err := s.check(ctx, p); err != nil {
		return nil, err
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrSingleton
	}
	p.ID = ""
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return created, nil
}

// Get returns the home page or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context) (*domain.HomePage, error) {
	return s.repo.Get(ctx)
}

// Update replaces every editable field of the existing home page.
func (s *Service) Update(ctx context.Context, p domain.HomePage) (*domain.HomePage, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	clearBlankRefs(&p)
	if err := s.check(ctx, p); err != nil {
		return nil, err
	}
	p.ID = current.ID
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return updated, nil
}

// Delete removes the home page together with all of its children.
func (s *Service) Delete(ctx context.Context) error {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, current.ID); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *Service) check(ctx context.Context, p domain.HomePage) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if s.docs == nil {
		return nil
	}
	refs := []struct {
		field string
		id    *string
	}{
		{"cvDocumentFr", p.CVDocumentFR},
		{"cvDocumentEn", p.CVDocumentEN},
	}
	missing := map[string]string{}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		if _, err := s.docs.GetByID(ctx, *ref.id); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			missing[ref.field] = "document not found"
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

// clearBlankRefs treats an empty CV reference as no reference.
func clearBlankRefs(p *domain.HomePage) {
	for _, ref := range []**string{&p.CVDocumentFR, &p.CVDocumentEN} {
		if *ref != nil && strings.TrimSpace(**ref) == "" {
			*ref = nil
		}
	}
}
