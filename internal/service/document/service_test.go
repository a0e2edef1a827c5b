package document

import (
	"context"
	"errors"
	"testing"

	"portfolio-cms/internal/domain"
)

const docID = "0f1e2d3c-4b5a-4968-8776-655443322110"

type memoryRepo struct {
	docs map[string]domain.Document
}

func (r *memoryRepo) Create(_ context.Context, d domain.Document) (*domain.Document, error) {
	d.ID = docID
	r.docs[d.ID] = d
	return &d, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type countingCache struct{ calls int }

func (c *countingCache) Invalidate() { c.calls++ }

func TestServiceCreate(t *testing.T) {
	svc := New(&memoryRepo{docs: map[string]domain.Document{}}, nil, "")

	got, err := svc.Create(context.Background(), domain.Document{Title: "  CV  ", FileURL: " documents/cv.pdf "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Title != "CV" || got.FileURL != "documents/cv.pdf" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}

	_, err = svc.Create(context.Background(), domain.Document{Title: " "})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["title"] == "" || verr.Fields["fileUrl"] == "" {
		t.Fatalf("expected title and fileUrl errors, got %v", verr.Fields)
	}
}

func TestServiceDelete_Invalidates(t *testing.T) {
	repo := &memoryRepo{docs: map[string]domain.Document{docID: {ID: docID}}}
	cache := &countingCache{}
	svc := New(repo, cache, "")

	if err := svc.Delete(context.Background(), docID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.calls != 1 {
		t.Fatalf("expected invalidation, got %d", cache.calls)
	}
	if err := svc.Delete(context.Background(), docID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
	if cache.calls != 1 {
		t.Fatalf("failed deletes must not invalidate, got %d", cache.calls)
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		host, file, want string
	}{
		{"", "documents/cv.pdf", "documents/cv.pdf"},
		{"https://cdn.example.com", "documents/cv.pdf", "https://cdn.example.com/documents/cv.pdf"},
		{"https://cdn.example.com", "/documents/cv.pdf", "https://cdn.example.com/documents/cv.pdf"},
		{"https://cdn.example.com/", "documents/cv.pdf", "https://cdn.example.com/documents/cv.pdf"},
		{"https://cdn.example.com", "https://other.example.com/cv.pdf", "https://other.example.com/cv.pdf"},
		{"https://cdn.example.com", "", ""},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.host, tt.file); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.host, tt.file, got, tt.want)
		}
	}
}

func TestServiceURL_TrimsHostSlash(t *testing.T) {
	svc := New(&memoryRepo{}, nil, "https://cdn.example.com/")
	if got := svc.URL(domain.Document{FileURL: "cv.pdf"}); got != "https://cdn.example.com/cv.pdf" {
		t.Fatalf("unexpected url %q", got)
	}
}
