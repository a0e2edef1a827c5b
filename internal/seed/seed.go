package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/domain"
	educationrepo "portfolio-cms/internal/repository/education"
	experiencerepo "portfolio-cms/internal/repository/experience"
	pagerepo "portfolio-cms/internal/repository/page"
	projectrepo "portfolio-cms/internal/repository/project"
	skillrepo "portfolio-cms/internal/repository/skill"
)

// Apply inserts a demo home page for manual testing. It is idempotent: the page
// is created only when none exists, and each collection is filled only while
// it is empty.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	pages := pagerepo.NewPostgres(pool, nil)
	page, err := ensurePage(ctx, pages)
	if err != nil {
		return fmt.Errorf("ensure home page: %w", err)
	}

	if err := fill[domain.Skill](ctx, skillrepo.NewPostgres(pool), page.ID, sampleSkills(page.ID)); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	if err := fill[domain.Experience](ctx, experiencerepo.NewPostgres(pool), page.ID, sampleExperiences(page.ID)); err != nil {
		return fmt.Errorf("seed experiences: %w", err)
	}
	if err := fill[domain.Project](ctx, projectrepo.NewPostgres(pool), page.ID, sampleProjects(page.ID)); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := fill[domain.Education](ctx, educationrepo.NewPostgres(pool), page.ID, sampleEducation(page.ID)); err != nil {
		return fmt.Errorf("seed education: %w", err)
	}
	return nil
}

func ensurePage(ctx context.Context, pages pagerepo.Repository) (*domain.HomePage, error) {
	page, err := pages.Get(ctx)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	p := domain.DefaultHomePage()
	p.HeroDescription = domain.L(
		"<p>J'accompagne les équipes entre code et relation client.</p>",
		"<p>I help teams bridge code and customer relationships.</p>",
	)
	p.AboutText = domain.L(
		"<p>Développeuse web passionnée par l'expérience client.</p>",
		"<p>Web developer with a passion for customer experience.</p>",
	)
	p.Email = "contact@example.com"
	p.Location = "Paris, France"
	p.GithubURL = "https://github.com/example"
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return pages.Create(ctx, p)
}

type collection[T any] interface {
	Create(ctx context.Context, in T) (*T, error)
	ListByPage(ctx context.Context, pageID string) ([]T, error)
}

type seedable interface {
	Validate() error
}

func fill[T seedable](ctx context.Context, repo collection[T], pageID string, items []T) error {
	existing, err := repo.ListByPage(ctx, pageID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, err := repo.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func sampleSkills(pageID string) []domain.Skill {
	skill := func(name string, c domain.SkillCategory, level, order int) domain.Skill {
		return domain.Skill{PageID: pageID, Name: name, Category: c, Level: level, Order: order}
	}
	return []domain.Skill{
		skill("Go", domain.CategoryWebDevelopment, 80, 1),
		skill("JavaScript", domain.CategoryWebDevelopment, 75, 1),
		skill("Onboarding client", domain.CategoryCustomerSuccess, 90, 2),
		skill("SEO", domain.CategoryDigitalMarketing, 60, 3),
		skill("HubSpot", domain.CategoryToolsAndCRM, 85, 4),
	}
}

func sampleExperiences(pageID string) []domain.Experience {
	return []domain.Experience{
		{
			PageID:  pageID,
			Year:    "2022",
			Title:   domain.L("Développeuse Web", "Web Developer"),
			Company: "Example Studio",
			Order:   2,
		},
		{
			PageID:  pageID,
			Year:    "2020-2021",
			Title:   domain.L("Chargée de Customer Success", "Customer Success Manager"),
			Company: "Example SaaS",
			Order:   1,
		},
	}
}

func sampleProjects(pageID string) []domain.Project {
	return []domain.Project{{
		PageID:       pageID,
		Title:        domain.L("Portfolio bilingue", "Bilingual portfolio"),
		Technologies: "Go, PostgreSQL",
		GithubURL:    "https://github.com/example/portfolio",
		Order:        1,
	}}
}

func sampleEducation(pageID string) []domain.Education {
	return []domain.Education{{
		PageID:      pageID,
		Year:        "2019",
		Title:       domain.L("Licence Informatique", "Bachelor in Computer Science"),
		Institution: "Université Example",
		Order:       1,
	}}
}
