package portfolio

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"portfolio-cms/internal/domain"
	docsvc "portfolio-cms/internal/service/document"
)

type pageReader interface {
	Get(ctx context.Context) (*domain.HomePage, error)
}

type skillLister interface {
	ListByPage(ctx context.Context, pageID string) ([]domain.Skill, error)
}

type experienceLister interface {
	ListByPage(ctx context.Context, pageID string) ([]domain.Experience, error)
}

type projectLister interface {
	ListByPage(ctx context.Context, pageID string) ([]domain.Project, error)
}

type educationLister interface {
	ListByPage(ctx context.Context, pageID string) ([]domain.Education, error)
}

type documentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// Deps lists the read sides the portfolio view is assembled from.
type Deps struct {
	Pages       pageReader
	Skills      skillLister
	Experiences experienceLister
	Projects    projectLister
	Education   educationLister
	Documents   documentReader
}

// Service assembles the home page aggregate and caches its localized views.
type Service struct {
	deps     Deps
	cache    *cache.Cache
	fileHost string
}

// New creates a Service caching views for ttl. A zero ttl disables caching.
func New(deps Deps, ttl time.Duration, fileHost string) *Service {
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}
	return &Service{deps: deps, cache: c, fileHost: fileHost}
}

// Invalidate drops every cached view.
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

// Aggregate is the home page with every collection it owns, in default order.
type Aggregate struct {
	Page     domain.HomePage `json:"page"`
	Children domain.Children `json:"children"`
}

// Aggregate loads the home page and its children.
func (s *Service) Aggregate(ctx context.Context) (*Aggregate, error) {
	page, err := s.deps.Pages.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := &Aggregate{Page: *page}
	if out.Children.Skills, err = s.deps.Skills.ListByPage(ctx, page.ID); err != nil {
		return nil, err
	}
	if out.Children.Experiences, err = s.deps.Experiences.ListByPage(ctx, page.ID); err != nil {
		return nil, err
	}
	if out.Children.Projects, err = s.deps.Projects.ListByPage(ctx, page.ID); err != nil {
		return nil, err
	}
	if out.Children.Education, err = s.deps.Education.ListByPage(ctx, page.ID); err != nil {
		return nil, err
	}
	slices.SortStableFunc(out.Children.Skills, domain.CompareSkills)
	slices.SortStableFunc(out.Children.Experiences, domain.CompareExperiences)
	slices.SortStableFunc(out.Children.Projects, domain.CompareProjects)
	slices.SortStableFunc(out.Children.Education, domain.CompareEducation)
	return out, nil
}

// View returns the portfolio rendered for one language.
func (s *Service) View(ctx context.Context, lang string) (*View, error) {
	key := "portfolio:" + lang
	if s.cache != nil {
		if v, found := s.cache.Get(key); found {
			if view, ok := v.(*View); ok {
				return view, nil
			}
		}
	}

	agg, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	view := buildView(agg, lang)
	if ref := agg.Page.CVDocument(lang); ref != nil && s.deps.Documents != nil {
		doc, err := s.deps.Documents.GetByID(ctx, *ref)
		switch {
		case err == nil:
			view.Contact.CVURL = docsvc.ResolveURL(s.fileHost, doc.FileURL)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.SetDefault(key, view)
	}
	return view, nil
}
