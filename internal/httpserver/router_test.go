package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/service/portfolio"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubHomeService struct {
	page      *domain.HomePage
	createErr error
	received  domain.HomePage
	deleted   bool
}

func (s *stubHomeService) Create(_ context.Context, p domain.HomePage) (*domain.HomePage, error) {
	s.received = p
	if s.createErr != nil {
		return nil, s.createErr
	}
	p.ID = "page-id"
	return &p, nil
}

func (s *stubHomeService) Get(_ context.Context) (*domain.HomePage, error) {
	if s.page == nil {
		return nil, domain.ErrNotFound
	}
	return s.page, nil
}

func (s *stubHomeService) Update(_ context.Context, p domain.HomePage) (*domain.HomePage, error) {
	s.received = p
	return &p, nil
}

func (s *stubHomeService) Delete(_ context.Context) error {
	if s.page == nil {
		return domain.ErrNotFound
	}
	s.deleted = true
	return nil
}

type stubChildService[T any] struct {
	items    []T
	received T
	pageID   string
	err      error
}

func (s *stubChildService[T]) Create(_ context.Context, in T) (*T, error) {
	s.received = in
	if s.err != nil {
		return nil, s.err
	}
	return &in, nil
}

func (s *stubChildService[T]) Get(_ context.Context, _ string) (*T, error) {
	if len(s.items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.items[0], nil
}

func (s *stubChildService[T]) List(_ context.Context, pageID string) ([]T, error) {
	s.pageID = pageID
	return s.items, s.err
}

func (s *stubChildService[T]) Update(_ context.Context, _ string, in T) (*T, error) {
	s.received = in
	return &in, s.err
}

func (s *stubChildService[T]) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubDocumentService struct {
	docs []domain.Document
}

func (s *stubDocumentService) Create(_ context.Context, d domain.Document) (*domain.Document, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.ID = "doc-id"
	return &d, nil
}

func (s *stubDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	for _, d := range s.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return s.docs, nil
}

func (s *stubDocumentService) Delete(_ context.Context, _ string) error { return nil }

func (s *stubDocumentService) URL(d domain.Document) string {
	return "https://files.example.com/" + d.FileURL
}

type stubPortfolioService struct {
	lang string
	err  error
}

func (s *stubPortfolioService) View(_ context.Context, lang string) (*portfolio.View, error) {
	s.lang = lang
	if s.err != nil {
		return nil, s.err
	}
	return &portfolio.View{Lang: lang}, nil
}

type fixture struct {
	home      *stubHomeService
	skills    *stubChildService[domain.Skill]
	exps      *stubChildService[domain.Experience]
	projects  *stubChildService[domain.Project]
	education *stubChildService[domain.Education]
	docs      *stubDocumentService
	public    *stubPortfolioService
	router    *gin.Engine
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fixture{
		home:      &stubHomeService{},
		skills:    &stubChildService[domain.Skill]{},
		exps:      &stubChildService[domain.Experience]{},
		projects:  &stubChildService[domain.Project]{},
		education: &stubChildService[domain.Education]{},
		docs:      &stubDocumentService{},
		public:    &stubPortfolioService{},
	}
	router, err := buildRouter(logDiscard(), nil, Deps{
		HomeSvc:       f.home,
		SkillSvc:      f.skills,
		ExperienceSvc: f.exps,
		ProjectSvc:    f.projects,
		EducationSvc:  f.education,
		DocumentSvc:   f.docs,
		PortfolioSvc:  f.public,
	}, opts)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	f.router = router
	return f
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestBuildRouter_MissingDeps(t *testing.T) {
	if _, err := buildRouter(logDiscard(), nil, Deps{}, Options{}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, Options{})
	if rec := f.do(http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/readyz", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without db, got %d", rec.Code)
	}
}

func TestCreateHome_KeepsDefaults(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodPost, "/admin/home", `{"email":"me@example.com","heroTitle":{"fr":"Bonjour"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := f.home.received
	if got.Email != "me@example.com" || got.HeroTitle.Get(domain.LangFR) != "Bonjour" {
		t.Fatalf("unexpected decoded page %+v", got)
	}
	if got.AboutTitle.Get(domain.LangEN) != "About Me" {
		t.Fatalf("expected default about title, got %v", got.AboutTitle)
	}
}

func TestCreateHome_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"singleton", domain.ErrSingleton, http.StatusConflict},
		{"validation", &domain.ValidationError{Fields: map[string]string{"email": "must be a valid e-mail address"}}, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			f.home.createErr = tt.err
			rec := f.do(http.MethodPost, "/admin/home", `{}`)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d body=%s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateHome_ValidationFields(t *testing.T) {
	f := newFixture(t, Options{})
	f.home.createErr = &domain.ValidationError{Fields: map[string]string{"heroTitle[fr]": "must be at most 255 characters"}}
	rec := f.do(http.MethodPost, "/admin/home", `{}`)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Fields["heroTitle[fr]"] == "" {
		t.Fatalf("expected field error in body, got %s", rec.Body.String())
	}
}

func TestCreateHome_MalformedBody(t *testing.T) {
	f := newFixture(t, Options{})
	if rec := f.do(http.MethodPost, "/admin/home", `{"email":`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHomeGetAndDelete(t *testing.T) {
	f := newFixture(t, Options{})
	if rec := f.do(http.MethodGet, "/admin/home", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := f.do(http.MethodDelete, "/admin/home", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	page := domain.DefaultHomePage()
	page.ID = "page-id"
	f.home.page = &page
	if rec := f.do(http.MethodGet, "/admin/home", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":"page-id"`) {
		t.Fatalf("unexpected get response %d %s", rec.Code, rec.Body.String())
	}
	if rec := f.do(http.MethodDelete, "/admin/home", ""); rec.Code != http.StatusNoContent || !f.home.deleted {
		t.Fatalf("expected page deleted, got %d", rec.Code)
	}
}

func TestCreateSkill_UsesPathPage(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodPost, "/admin/pages/page-id/skills", `{"name":"Go","category":"web-development","pageId":"other"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := f.skills.received
	if got.PageID != "page-id" || got.Name != "Go" {
		t.Fatalf("unexpected skill %+v", got)
	}
	if got.Level != domain.DefaultSkillLevel {
		t.Fatalf("expected default level, got %d", got.Level)
	}
}

func TestCreateChild_MissingPage(t *testing.T) {
	f := newFixture(t, Options{})
	f.exps.err = domain.ErrParentRequired
	rec := f.do(http.MethodPost, "/admin/pages/nope/experiences", `{"year":"2022"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestListChildren(t *testing.T) {
	f := newFixture(t, Options{})
	f.projects.items = []domain.Project{{ID: "p1", Title: domain.L("Site", "Website")}}
	rec := f.do(http.MethodGet, "/admin/pages/page-id/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if f.projects.pageID != "page-id" || !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Fatalf("unexpected list response %s", rec.Body.String())
	}

	rec = f.do(http.MethodGet, "/admin/pages/page-id/education", "")
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results array, got %s", rec.Body.String())
	}
}

func TestChildItemRoutes(t *testing.T) {
	f := newFixture(t, Options{})
	if rec := f.do(http.MethodGet, "/admin/education/e1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	rec := f.do(http.MethodPut, "/admin/skills/s1", `{"name":"Bash","category":"tools-and-crm","order":3}`)
	if rec.Code != http.StatusOK || f.skills.received.Order != 3 {
		t.Fatalf("unexpected update %d %+v", rec.Code, f.skills.received)
	}
	if rec := f.do(http.MethodDelete, "/admin/projects/p1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestDocuments(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodPost, "/admin/documents", `{"title":"CV","fileUrl":"cv.pdf"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"url":"https://files.example.com/cv.pdf"`) {
		t.Fatalf("expected resolved url, got %s", rec.Body.String())
	}
	if rec := f.do(http.MethodPost, "/admin/documents", `{"title":""}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/admin/documents/missing", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSchema(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(http.MethodGet, "/admin/schema", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Section Hero") {
		t.Fatalf("unexpected schema response %d %s", rec.Code, rec.Body.String())
	}
}

func TestPortfolio_Language(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers []string
		want    string
	}{
		{"default", "/api/portfolio", nil, domain.LangEN},
		{"query", "/api/portfolio?lang=fr", []string{"Accept-Language", "en"}, domain.LangFR},
		{"header", "/api/portfolio", []string{"Accept-Language", "fr-CA,en;q=0.5"}, domain.LangFR},
		{"unsupported", "/api/portfolio?lang=de", nil, domain.LangEN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{DefaultLanguage: domain.LangEN})
			rec := f.do(http.MethodGet, tt.path, "", tt.headers...)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if f.public.lang != tt.want || rec.Header().Get("Content-Language") != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, f.public.lang)
			}
		})
	}
}

func TestPortfolio_NoPage(t *testing.T) {
	f := newFixture(t, Options{})
	f.public.err = domain.ErrNotFound
	if rec := f.do(http.MethodGet, "/api/portfolio", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	f := newFixture(t, Options{AllowedOrigins: []string{"https://portfolio.example.com"}})
	rec := f.do(http.MethodGet, "/api/portfolio", "", "Origin", "https://portfolio.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://portfolio.example.com" {
		t.Fatalf("expected allow-origin header, got %q", got)
	}
}
