package experience

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

const experienceColumns = `id::text, page_id::text, year, title, company, description, sort_order, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	title, description, err := encode(e)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO experiences (page_id, year, title, company, description, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + experienceColumns
	return scanExperience(r.pool.QueryRow(ctx, q, e.PageID, e.Year, title, e.Company, description, e.Order))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	const q = `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	return scanExperience(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByPage(ctx context.Context, pageID string) ([]domain.Experience, error) {
	const q = `
SELECT ` + experienceColumns + `
FROM experiences
WHERE page_id = $1
ORDER BY sort_order DESC
`
	rows, err := r.pool.Query(ctx, q, pageID)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()

	result := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
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

func (r *postgresRepo) Update(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	title, description, err := encode(e)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE experiences
SET year = $2, title = $3, company = $4, description = $5, sort_order = $6
WHERE id = $1
RETURNING ` + experienceColumns
	return scanExperience(r.pool.QueryRow(ctx, q, e.ID, e.Year, title, e.Company, description, e.Order))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func encode(e domain.Experience) (title, description []byte, err error) {
	if title, err = json.Marshal(e.Title.Normalized()); err != nil {
		return nil, nil, err
	}
	if description, err = json.Marshal(e.Description.Normalized()); err != nil {
		return nil, nil, err
	}
	return title, description, nil
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	var title, description []byte
	if err := row.Scan(&e.ID, &e.PageID, &e.Year, &title, &e.Company, &description, &e.Order, &e.CreatedAt); err != nil {
		return nil, db.TranslateError(err)
	}
	if err := json.Unmarshal(title, &e.Title); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(description, &e.Description); err != nil {
		return nil, err
	}
	return &e, nil
}
