package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"portfolio-cms/internal/config"
	"portfolio-cms/internal/db"
	"portfolio-cms/internal/httpserver"
	documentrepo "portfolio-cms/internal/repository/document"
	educationrepo "portfolio-cms/internal/repository/education"
	experiencerepo "portfolio-cms/internal/repository/experience"
	pagerepo "portfolio-cms/internal/repository/page"
	projectrepo "portfolio-cms/internal/repository/project"
	skillrepo "portfolio-cms/internal/repository/skill"
	documentsvc "portfolio-cms/internal/service/document"
	educationsvc "portfolio-cms/internal/service/education"
	experiencesvc "portfolio-cms/internal/service/experience"
	pagesvc "portfolio-cms/internal/service/page"
	portfoliosvc "portfolio-cms/internal/service/portfolio"
	projectsvc "portfolio-cms/internal/service/project"
	skillsvc "portfolio-cms/internal/service/skill"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	pageRepo := pagerepo.NewPostgres(dbpool, logger)
	skillRepo := skillrepo.NewPostgres(dbpool)
	experienceRepo := experiencerepo.NewPostgres(dbpool)
	projectRepo := projectrepo.NewPostgres(dbpool)
	educationRepo := educationrepo.NewPostgres(dbpool)
	documentRepo := documentrepo.NewPostgres(dbpool)

	portfolioService := portfoliosvc.New(portfoliosvc.Deps{
		Pages:       pageRepo,
		Skills:      skillRepo,
		Experiences: experienceRepo,
		Projects:    projectRepo,
		Education:   educationRepo,
		Documents:   documentRepo,
	}, cfg.CacheTTL, cfg.FileURLHost)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		HomeSvc:       pagesvc.New(pageRepo, documentRepo, portfolioService),
		SkillSvc:      skillsvc.New(skillRepo, pageRepo, portfolioService),
		ExperienceSvc: experiencesvc.New(experienceRepo, pageRepo, portfolioService),
		ProjectSvc:    projectsvc.New(projectRepo, pageRepo, portfolioService),
		EducationSvc:  educationsvc.New(educationRepo, pageRepo, portfolioService),
		DocumentSvc:   documentsvc.New(documentRepo, portfolioService, cfg.FileURLHost),
		PortfolioSvc:  portfolioService,
	}, httpserver.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		DefaultLanguage: cfg.DefaultLanguage,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
