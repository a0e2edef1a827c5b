package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/service/portfolio"
)

type homePageService interface {
	Create(ctx context.Context, p domain.HomePage) (*domain.HomePage, error)
	Get(ctx context.Context) (*domain.HomePage, error)
	Update(ctx context.Context, p domain.HomePage) (*domain.HomePage, error)
	Delete(ctx context.Context) error
}

// childService is the use-case surface shared by every collection owned by
// the home page.
type childService[T any] interface {
	Create(ctx context.Context, in T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, pageID string) ([]T, error)
	Update(ctx context.Context, id string, in T) (*T, error)
	Delete(ctx context.Context, id string) error
}

type documentService interface {
	Create(ctx context.Context, d domain.Document) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
	URL(d domain.Document) string
}

type portfolioService interface {
	View(ctx context.Context, lang string) (*portfolio.View, error)
}

// Deps holds the services the router dispatches to.
type Deps struct {
	HomeSvc       homePageService
	SkillSvc      childService[domain.Skill]
	ExperienceSvc childService[domain.Experience]
	ProjectSvc    childService[domain.Project]
	EducationSvc  childService[domain.Education]
	DocumentSvc   documentService
	PortfolioSvc  portfolioService
}

// Options tunes cross-cutting router behavior.
type Options struct {
	// AllowedOrigins enables CORS for the listed origins; "*" allows any.
	AllowedOrigins []string
	// DefaultLanguage is served when a request names no supported language.
	DefaultLanguage string
}

func (d Deps) validate() error {
	switch {
	case d.HomeSvc == nil:
		return errors.New("home page service is required")
	case d.SkillSvc == nil, d.ExperienceSvc == nil, d.ProjectSvc == nil, d.EducationSvc == nil:
		return errors.New("child services are required")
	case d.DocumentSvc == nil:
		return errors.New("document service is required")
	case d.PortfolioSvc == nil:
		return errors.New("portfolio service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if len(opts.AllowedOrigins) > 0 {
		mw, err := corsMiddleware(opts.AllowedOrigins)
		if err != nil {
			return nil, err
		}
		router.Use(mw)
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	admin := router.Group("/admin")
	admin.GET("/schema", schemaHandler)

	home := &homeHandlers{svc: deps.HomeSvc, logger: logger}
	admin.POST("/home", home.create)
	admin.GET("/home", home.get)
	admin.PUT("/home", home.update)
	admin.DELETE("/home", home.delete)

	registerChildRoutes(admin, "skills", &childHandlers[domain.Skill]{
		svc:      deps.SkillSvc,
		logger:   logger,
		defaults: domain.DefaultSkill,
		setPage:  func(s *domain.Skill, pageID string) { s.PageID = pageID },
	})
	registerChildRoutes(admin, "experiences", &childHandlers[domain.Experience]{
		svc:     deps.ExperienceSvc,
		logger:  logger,
		setPage: func(e *domain.Experience, pageID string) { e.PageID = pageID },
	})
	registerChildRoutes(admin, "projects", &childHandlers[domain.Project]{
		svc:     deps.ProjectSvc,
		logger:  logger,
		setPage: func(p *domain.Project, pageID string) { p.PageID = pageID },
	})
	registerChildRoutes(admin, "education", &childHandlers[domain.Education]{
		svc:     deps.EducationSvc,
		logger:  logger,
		setPage: func(e *domain.Education, pageID string) { e.PageID = pageID },
	})

	docs := &documentHandlers{svc: deps.DocumentSvc, logger: logger}
	admin.POST("/documents", docs.create)
	admin.GET("/documents", docs.list)
	admin.GET("/documents/:id", docs.get)
	admin.DELETE("/documents/:id", docs.delete)

	public := &publicHandlers{svc: deps.PortfolioSvc, logger: logger, defaultLang: opts.DefaultLanguage}
	router.GET("/api/portfolio", public.portfolio)

	return router, nil
}

func corsMiddleware(origins []string) (gin.HandlerFunc, error) {
	cfg := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowHeaders("Accept-Language")
	cfg.AddExposeHeaders("Content-Language")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cors.New(cfg), nil
}
