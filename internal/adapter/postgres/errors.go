package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// SQLSTATE codes of integrity violations raised by the schema.
const (
	codeNotNull    = "23502"
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

// MapError translates a driver error into a domain sentinel, prefixed with
// the entity and its lookup key ("book 3f2a...: not found"). Errors with no
// domain meaning, context cancellation included, keep their original chain.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, key, classify(err))
}

func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUnique:
		return domain.ErrAlreadyExists
	case codeForeignKey:
		return domain.ErrNotFound
	case codeCheck:
		return domain.NewValidationError(constraintField(pgErr), "out of range")
	case codeNotNull:
		return domain.NewValidationError(constraintField(pgErr), "required")
	default:
		return err
	}
}

// constraintField names the offending column, falling back to the
// constraint when postgres does not report one.
func constraintField(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	default:
		return "row"
	}
}
