package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-cms/internal/domain"
)

// PostgreSQL SQLSTATE codes mapped onto domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeInvalidText         = "22P02"
)

// singletonIndex is the unique index capping home_pages at one row.
const singletonIndex = "home_pages_singleton_idx"

// TranslateError maps driver errors to domain errors. Unknown errors are
// returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if pgErr.ConstraintName == singletonIndex {
			return domain.ErrSingleton
		}
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		if pgErr.ColumnName == "page_id" || pgErr.ConstraintName == pgErr.TableName+"_page_id_fkey" {
			return domain.ErrParentRequired
		}
		return domain.ErrNotFound
	case codeCheckViolation, codeStringTooLong:
		return domain.ErrInvalid
	case codeInvalidText:
		return domain.ErrNotFound
	}
	return err
}
