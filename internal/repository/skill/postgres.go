package skill

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

const skillColumns = `id::text, page_id::text, name, category, level, sort_order, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Skill) (*domain.Skill, error) {
	const q = `
INSERT INTO skills (page_id, name, category, level, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + skillColumns
	return scanSkill(r.pool.QueryRow(ctx, q, s.PageID, s.Name, string(s.Category), s.Level, s.Order))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	const q = `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByPage(ctx context.Context, pageID string) ([]domain.Skill, error) {
	const q = `
SELECT ` + skillColumns + `
FROM skills
WHERE page_id = $1
ORDER BY sort_order ASC, name COLLATE "C" ASC
`
	rows, err := r.pool.Query(ctx, q, pageID)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()

	result := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.TranslateError(err)
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, s domain.Skill) (*domain.Skill, error) {
	const q = `
UPDATE skills
SET name = $2, category = $3, level = $4, sort_order = $5
WHERE id = $1
RETURNING ` + skillColumns
	return scanSkill(r.pool.QueryRow(ctx, q, s.ID, s.Name, string(s.Category), s.Level, s.Order))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	var category string
	if err := row.Scan(&s.ID, &s.PageID, &s.Name, &category, &s.Level, &s.Order, &s.CreatedAt); err != nil {
		return nil, db.TranslateError(err)
	}
	s.Category = domain.SkillCategory(category)
	return &s, nil
}
