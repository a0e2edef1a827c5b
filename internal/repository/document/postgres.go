package document

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-cms/internal/db"
	"portfolio-cms/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, d domain.Document) (*domain.Document, error) {
	const q = `
INSERT INTO documents (title, file_url)
VALUES ($1, $2)
RETURNING id::text, title, file_url, created_at
`
	return scanDocument(r.pool.QueryRow(ctx, q, d.Title, d.FileURL))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	const q = `
SELECT id::text, title, file_url, created_at
FROM documents
WHERE id = $1
`
	return scanDocument(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Document, error) {
	const q = `
SELECT id::text, title, file_url, created_at
FROM documents
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE home_pages SET cv_document_fr = NULL, updated_at = now() WHERE cv_document_fr = $1`, id); err != nil {
		return db.TranslateError(err)
	}
	if _, err := tx.Exec(ctx, `UPDATE home_pages SET cv_document_en = NULL, updated_at = now() WHERE cv_document_en = $1`, id); err != nil {
		return db.TranslateError(err)
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return db.TranslateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	if err := row.Scan(&d.ID, &d.Title, &d.FileURL, &d.CreatedAt); err != nil {
		return nil, db.TranslateError(err)
	}
	return &d, nil
}
