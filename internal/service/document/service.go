package document

import (
	"context"
	"strings"

	"portfolio-cms/internal/domain"
	docrepo "portfolio-cms/internal/repository/document"
	"portfolio-cms/internal/service/shared"
)

// Service registers references to externally stored documents.
type Service struct {
	repo     docrepo.Repository
	cache    shared.Invalidator
	fileHost string
}

// New creates a Service. fileHost prefixes relative file URLs when resolving.
func New(repo docrepo.Repository, cache shared.Invalidator, fileHost string) *Service {
	if cache == nil {
		cache = shared.NopInvalidator
	}
	return &Service{repo: repo, cache: cache, fileHost: strings.TrimRight(fileHost, "/")}
}

func (s *Service) Create(ctx context.Context, d domain.Document) (*domain.Document, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.FileURL = strings.TrimSpace(d.FileURL)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.ID = ""
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Document, error) {
	if !shared.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.List(ctx)
}

// Delete removes the document. A home page referencing it keeps existing
// with the reference cleared.
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

// URL returns the public URL of a document.
func (s *Service) URL(d domain.Document) string {
	return ResolveURL(s.fileHost, d.FileURL)
}

// ResolveURL joins host and a relative file path; absolute URLs are kept.
func ResolveURL(host, fileURL string) string {
	host = strings.TrimRight(host, "/")
	if fileURL == "" || host == "" {
		return fileURL
	}
	if strings.HasPrefix(fileURL, "http://") || strings.HasPrefix(fileURL, "https://") {
		return fileURL
	}
	return host + "/" + strings.TrimLeft(fileURL, "/")
}
