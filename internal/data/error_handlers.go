package data

import (
	"errors"
	"fmt"

	"classsync/internal/errdefs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the schema can raise.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// handleError maps driver errors to errdefs kinds. A foreign key miss means
// the referenced class, assignment or profile is gone, which callers see as
// not found.
func handleError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errdefs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errdefs.ErrAlreadyExists
		case codeForeignKeyViolation:
			return errdefs.ErrNotFound
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%w: %s", errdefs.ErrValidation, pgErr.ConstraintName)
		}
		return fmt.Errorf("repository error: %w", err)
	}

	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", errdefs.ErrUnavailable, err)
	}
	return fmt.Errorf("repository error: %w", err)
}
