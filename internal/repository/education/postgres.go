package education

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

const educationColumns = `id::text, page_id::text, year, title, institution, description, sort_order, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, e domain.Education) (*domain.Education, error) {
	title, err := json.Marshal(e.Title.Normalized())
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO education (page_id, year, title, institution, description, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + educationColumns
	return scanEducation(r.pool.QueryRow(ctx, q, e.PageID, e.Year, title, e.Institution, e.Description, e.Order))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Education, error) {
	const q = `SELECT ` + educationColumns + ` FROM education WHERE id = $1`
	return scanEducation(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByPage(ctx context.Context, pageID string) ([]domain.Education, error) {
	const q = `
SELECT ` + educationColumns + `
FROM education
WHERE page_id = $1
ORDER BY sort_order DESC
`
	rows, err := r.pool.Query(ctx, q, pageID)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()

	result := []domain.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError(err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, e domain.Education) (*domain.Education, error) {
	title, err := json.Marshal(e.Title.Normalized())
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE education
SET year = $2, title = $3, institution = $4, description = $5, sort_order = $6
WHERE id = $1
RETURNING ` + educationColumns
	return scanEducation(r.pool.QueryRow(ctx, q, e.ID, e.Year, title, e.Institution, e.Description, e.Order))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	var title []byte
	if err := row.Scan(&e.ID, &e.PageID, &e.Year, &title, &e.Institution, &e.Description, &e.Order, &e.CreatedAt); err != nil {
		return nil, db.TranslateError(err)
	}
	if err := json.Unmarshal(title, &e.Title); err != nil {
		return nil, err
	}
	return &e, nil
}
