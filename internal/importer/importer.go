package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"portfolio-cms/internal/domain"
)

// Kind names the collection a CSV file is loaded into.
type Kind string

const (
	KindSkills      Kind = "skills"
	KindExperiences Kind = "experiences"
	KindProjects    Kind = "projects"
	KindEducation   Kind = "education"
)

// Kinds lists every importable collection.
var Kinds = []Kind{KindSkills, KindExperiences, KindProjects, KindEducation}

type creator[T any] interface {
	Create(ctx context.Context, in T) (*T, error)
}

// Writers receives the parsed rows. Only the writer for the imported kind is
// required.
type Writers struct {
	Skills      creator[domain.Skill]
	Experiences creator[domain.Experience]
	Projects    creator[domain.Project]
	Education   creator[domain.Education]
}

// CSVImporter reads one collection from a CSV export and adds its rows to a
// home page. Localized columns are suffixed with the language, e.g. title.fr.
type CSVImporter struct {
	reader  *csv.Reader
	kind    Kind
	writers Writers
	pageID  string
}

func NewCSVImporter(r io.Reader, kind Kind, writers Writers, pageID string) (*CSVImporter, error) {
	var missing bool
	switch kind {
	case KindSkills:
		missing = writers.Skills == nil
	case KindExperiences:
		missing = writers.Experiences == nil
	case KindProjects:
		missing = writers.Projects == nil
	case KindEducation:
		missing = writers.Education == nil
	default:
		return nil, fmt.Errorf("unknown import kind %q", kind)
	}
	if missing {
		return nil, fmt.Errorf("no writer configured for %s", kind)
	}

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:  csvr,
		kind:    kind,
		writers: writers,
		pageID:  pageID,
	}, nil
}

// Run parses CSV rows and creates one entry per non-blank row. It stops at the
// first row that fails; rows before it stay imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row := csvRow{record: record, index: index}
		if row.blank() {
			continue
		}
		if err := i.save(ctx, row); err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row csvRow) error {
	order, err := row.number("order", 0)
	if err != nil {
		return err
	}

	switch i.kind {
	case KindSkills:
		raw := row.get("category")
		category, ok := domain.ParseSkillCategory(raw)
		if !ok {
			return fmt.Errorf("unknown skill category %q", raw)
		}
		level, err := row.number("level", domain.DefaultSkillLevel)
		if err != nil {
			return err
		}
		_, err = i.writers.Skills.Create(ctx, domain.Skill{
			PageID:   i.pageID,
			Name:     row.get("name"),
			Category: category,
			Level:    level,
			Order:    order,
		})
		return err
	case KindExperiences:
		_, err = i.writers.Experiences.Create(ctx, domain.Experience{
			PageID:      i.pageID,
			Year:        row.get("year"),
			Title:       row.localized("title"),
			Company:     row.get("company"),
			Description: row.localized("description"),
			Order:       order,
		})
		return err
	case KindProjects:
		_, err = i.writers.Projects.Create(ctx, domain.Project{
			PageID:       i.pageID,
			Title:        row.localized("title"),
			Description:  row.localized("description"),
			Technologies: row.get("technologies"),
			GithubURL:    row.get("github_url"),
			LiveURL:      row.get("live_url"),
			Order:        order,
		})
		return err
	default:
		_, err = i.writers.Education.Create(ctx, domain.Education{
			PageID:      i.pageID,
			Year:        row.get("year"),
			Title:       row.localized("title"),
			Institution: row.get("institution"),
			Description: row.get("description"),
			Order:       order,
		})
		return err
	}
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

type csvRow struct {
	record []string
	index  map[string]int
}

func (r csvRow) get(key string) string {
	pos, ok := r.index[key]
	if !ok || pos >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[pos])
}

func (r csvRow) blank() bool {
	for _, v := range r.record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r csvRow) number(key string, def int) (int, error) {
	v := r.get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func (r csvRow) localized(key string) domain.Localized {
	out := domain.Localized{}
	for _, lang := range domain.Languages {
		if v := r.get(key + "." + lang); v != "" {
			out[lang] = v
		}
	}
	return out
}
