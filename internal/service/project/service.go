package project

import (
	"context"

	"portfolio-cms/internal/domain"
	projectrepo "portfolio-cms/internal/repository/project"
	"portfolio-cms/internal/service/shared"
)

// Service manages projects owned by the home page.
type Service struct {
	repo  projectrepo.Repository
	pages shared.PageLookup
	cache shared.Invalidator
}

// New creates a Service. cache may be nil.
func New(repo projectrepo.Repository, pages shared.PageLookup, cache shared.Invalidator) *Service {
	if cache == nil {
		cache = shared.NopInvalidator
	}
	return &Service{repo: repo, pages: pages, cache: cache}
}

// Create validates in and stores it under in.PageID.
func (s *Service) Create(ctx context.Context, in domain.Project) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := shared.RequirePage(ctx, s.pages, in.PageID); err != nil {
		return nil, err
	}
	in.ID = ""
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	if !shared.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns the page's projects in ascending order.
func (s *Service) List(ctx context.Context, pageID string) ([]domain.Project, error) {
	if !shared.ValidID(pageID) {
		return nil, domain.ErrNotFound
	}
	if _, err := s.pages.GetByID(ctx, pageID); err != nil {
		return nil, err
	}
	return s.repo.ListByPage(ctx, pageID)
}

// Update replaces the editable fields of an existing entry. The owning page
// cannot change.
func (s *Service) Update(ctx context.Context, id string, in domain.Project) (*domain.Project, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.ID = current.ID
	in.PageID = current.PageID
	updated, err := s.repo.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !shared.ValidID(id) {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
