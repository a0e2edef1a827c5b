package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"portfolio-cms/internal/config"
	"portfolio-cms/internal/db"
	"portfolio-cms/internal/importer"
	educationrepo "portfolio-cms/internal/repository/education"
	experiencerepo "portfolio-cms/internal/repository/experience"
	pagerepo "portfolio-cms/internal/repository/page"
	projectrepo "portfolio-cms/internal/repository/project"
	skillrepo "portfolio-cms/internal/repository/skill"
	educationsvc "portfolio-cms/internal/service/education"
	experiencesvc "portfolio-cms/internal/service/experience"
	projectsvc "portfolio-cms/internal/service/project"
	skillsvc "portfolio-cms/internal/service/skill"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "importer",
		Short:        "Load portfolio collections from CSV files into the home page",
		SilenceUsage: true,
	}
	for _, kind := range importer.Kinds {
		root.AddCommand(newImportCmd(kind))
	}
	return root
}

func newImportCmd(kind importer.Kind) *cobra.Command {
	var (
		filePath string
		pageID   string
	)
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Import %s from a CSV file", kind),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), cmd, kind, filePath, pageID)
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "Path to the CSV file")
	cmd.Flags().StringVar(&pageID, "page", "", "Home page id (defaults to the existing home page)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, kind importer.Kind, filePath, pageID string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	pages := pagerepo.NewPostgres(pool, nil)
	if pageID == "" {
		page, err := pages.Get(ctx)
		if err != nil {
			return fmt.Errorf("load home page: %w", err)
		}
		pageID = page.ID
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	imp, err := importer.NewCSVImporter(f, kind, importer.Writers{
		Skills:      skillsvc.New(skillrepo.NewPostgres(pool), pages, nil),
		Experiences: experiencesvc.New(experiencerepo.NewPostgres(pool), pages, nil),
		Projects:    projectsvc.New(projectrepo.NewPostgres(pool), pages, nil),
		Education:   educationsvc.New(educationrepo.NewPostgres(pool), pages, nil),
	}, pageID)
	if err != nil {
		return err
	}

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		return fmt.Errorf("import failed after %d rows: %w", count, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s into page %s in %s\n", count, kind, pageID, time.Since(start).Truncate(time.Millisecond))
	return nil
}
