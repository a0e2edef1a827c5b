package project

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

const projectColumns = `id::text, page_id::text, title, description, technologies, github_url, live_url, sort_order, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	title, description, err := encode(p)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO projects (page_id, title, description, technologies, github_url, live_url, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns
	return scanProject(r.pool.QueryRow(ctx, q, p.PageID, title, description, p.Technologies, p.GithubURL, p.LiveURL, p.Order))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByPage(ctx context.Context, pageID string) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE page_id = $1
ORDER BY sort_order ASC
`
	rows, err := r.pool.Query(ctx, q, pageID)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError(err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	title, description, err := encode(p)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE projects
SET title = $2, description = $3, technologies = $4, github_url = $5, live_url = $6, sort_order = $7
WHERE id = $1
RETURNING ` + projectColumns
	return scanProject(r.pool.QueryRow(ctx, q, p.ID, title, description, p.Technologies, p.GithubURL, p.LiveURL, p.Order))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func encode(p domain.Project) (title, description []byte, err error) {
	if title, err = json.Marshal(p.Title.Normalized()); err != nil {
		return nil, nil, err
	}
	if description, err = json.Marshal(p.Description.Normalized()); err != nil {
		return nil, nil, err
	}
	return title, description, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var title, description []byte
	if err := row.Scan(&p.ID, &p.PageID, &title, &description, &p.Technologies, &p.GithubURL, &p.LiveURL, &p.Order, &p.CreatedAt); err != nil {
		return nil, db.TranslateError(err)
	}
	if err := json.Unmarshal(title, &p.Title); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(description, &p.Description); err != nil {
		return nil, err
	}
	return &p, nil
}
