package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-cms/internal/domain"
)

type stubWriter[T any] struct {
	items []T
	err   error
}

func (s *stubWriter[T]) Create(_ context.Context, in T) (*T, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, in)
	return &in, nil
}

func TestCSVImporter_Skills(t *testing.T) {
	csvData := `name,category,level,order
Go,webdev,90,1
HubSpot,tools-and-crm,,2
,,,
SEO,digital,70,`

	w := &stubWriter[domain.Skill]{}
	imp, err := NewCSVImporter(strings.NewReader(csvData), KindSkills, Writers{Skills: w}, "page-1")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 || len(w.items) != 3 {
		t.Fatalf("expected 3 skills imported, got %d (%d saved)", count, len(w.items))
	}

	first := w.items[0]
	if first.PageID != "page-1" || first.Category != domain.CategoryWebDevelopment || first.Level != 90 || first.Order != 1 {
		t.Fatalf("unexpected first skill %+v", first)
	}
	if w.items[1].Level != domain.DefaultSkillLevel {
		t.Fatalf("expected default level, got %d", w.items[1].Level)
	}
	if w.items[2].Category != domain.CategoryDigitalMarketing {
		t.Fatalf("expected alias resolved, got %q", w.items[2].Category)
	}
}

func TestCSVImporter_UnknownCategory(t *testing.T) {
	csvData := "name,category\nGo,web-development\nCobol,mainframe\n"
	w := &stubWriter[domain.Skill]{}
	imp, err := NewCSVImporter(strings.NewReader(csvData), KindSkills, Writers{Skills: w}, "page-1")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	count, err := imp.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected error on line 3, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected rows before the failure to stay imported, got %d", count)
	}
}

func TestCSVImporter_LocalizedColumns(t *testing.T) {
	csvData := `year,title.fr,title.en,company,description.fr,description.en,order
2022,Développeuse,Developer,Acme,<p>Projets web</p>,,3`

	w := &stubWriter[domain.Experience]{}
	imp, err := NewCSVImporter(strings.NewReader(csvData), KindExperiences, Writers{Experiences: w}, "page-1")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("import run: %v", err)
	}
	got := w.items[0]
	if got.Title.Get(domain.LangFR) != "Développeuse" || got.Title.Get(domain.LangEN) != "Developer" {
		t.Fatalf("unexpected title %v", got.Title)
	}
	if _, ok := got.Description[domain.LangEN]; ok {
		t.Fatalf("expected blank english description to be absent, got %v", got.Description)
	}
	if got.Order != 3 || got.Company != "Acme" {
		t.Fatalf("unexpected experience %+v", got)
	}
}

func TestCSVImporter_ProjectsAndEducation(t *testing.T) {
	projects := &stubWriter[domain.Project]{}
	imp, err := NewCSVImporter(strings.NewReader("title.en,technologies,github_url\nSite,\"Go, Postgres\",https://github.com/me/site\n"), KindProjects, Writers{Projects: projects}, "p")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("import projects: %v", err)
	}
	if got := projects.items[0].TechnologyList(); len(got) != 2 {
		t.Fatalf("unexpected technologies %v", got)
	}

	education := &stubWriter[domain.Education]{}
	imp, err = NewCSVImporter(strings.NewReader("year,title.fr,institution,description\n2018,Master,Université,Mention bien\n"), KindEducation, Writers{Education: education}, "p")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("import education: %v", err)
	}
	if education.items[0].Institution != "Université" || education.items[0].Description != "Mention bien" {
		t.Fatalf("unexpected education %+v", education.items[0])
	}
}

func TestCSVImporter_WriterError(t *testing.T) {
	w := &stubWriter[domain.Education]{err: domain.ErrParentRequired}
	imp, err := NewCSVImporter(strings.NewReader("year\n2018\n"), KindEducation, Writers{Education: w}, "")
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if _, err := imp.Run(context.Background()); !errors.Is(err, domain.ErrParentRequired) {
		t.Fatalf("expected ErrParentRequired, got %v", err)
	}
}

func TestNewCSVImporter_Config(t *testing.T) {
	if _, err := NewCSVImporter(strings.NewReader(""), "awards", Writers{}, "p"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
	if _, err := NewCSVImporter(strings.NewReader(""), KindSkills, Writers{}, "p"); err == nil {
		t.Fatalf("expected missing writer error")
	}
}
