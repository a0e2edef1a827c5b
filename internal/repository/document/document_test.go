package document

import (
	"context"
	"errors"
	"testing"

	"portfolio-cms/internal/dbtest"
	"portfolio-cms/internal/domain"
	pagerepo "portfolio-cms/internal/repository/page"
)

func TestPostgres_DeleteClearsPageReference(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)
	repo := NewPostgres(pool)
	pages := pagerepo.NewPostgres(pool, nil)

	cvFR, err := repo.Create(ctx, domain.Document{Title: "CV FR", FileURL: "/documents/cv-fr.pdf"})
	if err != nil {
		t.Fatalf("create fr: %v", err)
	}
	cvEN, err := repo.Create(ctx, domain.Document{Title: "CV EN", FileURL: "/documents/cv-en.pdf"})
	if err != nil {
		t.Fatalf("create en: %v", err)
	}

	p := domain.DefaultHomePage()
	p.CVDocumentFR = &cvFR.ID
	p.CVDocumentEN = &cvEN.ID
	created, err := pages.Create(ctx, p)
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	if err := repo.Delete(ctx, cvFR.ID); err != nil {
		t.Fatalf("delete document: %v", err)
	}

	got, err := pages.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("page should survive document deletion: %v", err)
	}
	if got.CVDocumentFR != nil {
		t.Fatalf("expected cleared fr reference, got %v", *got.CVDocumentFR)
	}
	if got.CVDocumentEN == nil || *got.CVDocumentEN != cvEN.ID {
		t.Fatalf("expected en reference to be kept, got %v", got.CVDocumentEN)
	}

	if err := repo.Delete(ctx, cvFR.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPostgres_List(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)
	repo := NewPostgres(pool)

	if _, err := repo.Create(ctx, domain.Document{Title: "CV"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "CV" {
		t.Fatalf("unexpected list %+v", list)
	}
}
