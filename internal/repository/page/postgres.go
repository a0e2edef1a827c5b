package page

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

// childTables are the collections owned by a home page, deleted with it.
var childTables = []string{"skills", "experiences", "projects", "education"}

const pageColumns = `id::text, hero_title, hero_subtitle, hero_description, about_title, about_text,
       email, phone, location, linkedin_url, github_url,
       cv_document_fr::text, cv_document_en::text, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

type localizedJSON struct {
	heroTitle, heroSubtitle, heroDescription, aboutTitle, aboutText []byte
}

func encodeLocalized(p domain.HomePage) (localizedJSON, error) {
	var out localizedJSON
	fields := []struct {
		dst *[]byte
		src domain.Localized
	}{
		{&out.heroTitle, p.HeroTitle},
		{&out.heroSubtitle, p.HeroSubtitle},
		{&out.heroDescription, p.HeroDescription},
		{&out.aboutTitle, p.AboutTitle},
		{&out.aboutText, p.AboutText},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.src.Normalized())
		if err != nil {
			return localizedJSON{}, err
		}
		*f.dst = b
	}
	return out, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.HomePage) (*domain.HomePage, error) {
	loc, err := encodeLocalized(p)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO home_pages (
    hero_title, hero_subtitle, hero_description, about_title, about_text,
    email, phone, location, linkedin_url, github_url, cv_document_fr, cv_document_en
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + pageColumns
	return r.scanPage(r.pool.QueryRow(ctx, q,
		loc.heroTitle, loc.heroSubtitle, loc.heroDescription, loc.aboutTitle, loc.aboutText,
		p.Email, p.Phone, p.Location, p.LinkedinURL, p.GithubURL, p.CVDocumentFR, p.CVDocumentEN,
	))
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.HomePage, error) {
	const q = `SELECT ` + pageColumns + ` FROM home_pages LIMIT 1`
	return r.scanPage(r.pool.QueryRow(ctx, q))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.HomePage, error) {
	const q = `SELECT ` + pageColumns + ` FROM home_pages WHERE id = $1`
	return r.scanPage(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, p domain.HomePage) (*domain.HomePage, error) {
	loc, err := encodeLocalized(p)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE home_pages
SET hero_title = $2,
    hero_subtitle = $3,
    hero_description = $4,
    about_title = $5,
    about_text = $6,
    email = $7,
    phone = $8,
    location = $9,
    linkedin_url = $10,
    github_url = $11,
    cv_document_fr = $12,
    cv_document_en = $13,
    updated_at = now()
WHERE id = $1
RETURNING ` + pageColumns
	return r.scanPage(r.pool.QueryRow(ctx, q, p.ID,
		loc.heroTitle, loc.heroSubtitle, loc.heroDescription, loc.aboutTitle, loc.aboutText,
		p.Email, p.Phone, p.Location, p.LinkedinURL, p.GithubURL, p.CVDocumentFR, p.CVDocumentEN,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range childTables {
		cmd, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE page_id = $1`, id)
		if err != nil {
			return db.TranslateError(err)
		}
		r.logger.Printf("page repo: cascade delete page=%s table=%s rows=%d", id, table, cmd.RowsAffected())
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM home_pages WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM home_pages`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) scanPage(row pgx.Row) (*domain.HomePage, error) {
	var p domain.HomePage
	var heroTitle, heroSubtitle, heroDescription, aboutTitle, aboutText []byte
	err := row.Scan(
		&p.ID,
		&heroTitle,
		&heroSubtitle,
		&heroDescription,
		&aboutTitle,
		&aboutText,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.LinkedinURL,
		&p.GithubURL,
		&p.CVDocumentFR,
		&p.CVDocumentEN,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		translated := db.TranslateError(err)
		if translated == err {
			r.logger.Printf("page repo: scan error=%v", err)
		}
		return nil, translated
	}
	decode := []struct {
		raw []byte
		dst *domain.Localized
	}{
		{heroTitle, &p.HeroTitle},
		{heroSubtitle, &p.HeroSubtitle},
		{heroDescription, &p.HeroDescription},
		{aboutTitle, &p.AboutTitle},
		{aboutText, &p.AboutText},
	}
	for _, d := range decode {
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			r.logger.Printf("page repo: decode localized id=%s err=%v", p.ID, err)
			return nil, err
		}
	}
	return &p, nil
}
