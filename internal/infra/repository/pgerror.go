package repository

import (
	"errors"

	"timewise/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPgError maps a driver error onto the repository error kinds.
// Anything that is not a recognised server answer counts as unavailable.
func classifyPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindUnavailable
	}

	switch {
	case pgErr.Code == pgerrcode.UndefinedTable:
		return infra.KindNotFound
	case pgErr.Code == pgerrcode.DuplicateTable, pgErr.Code == pgerrcode.UniqueViolation:
		// concurrent CREATE TABLE can also surface as a unique violation on pg_type
		return infra.KindAlreadyExists
	case pgErr.Code == pgerrcode.InsufficientPrivilege,
		pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code):
		return infra.KindAccessDenied
	case pgErr.Code == pgerrcode.UndefinedColumn, pgErr.Code == pgerrcode.DatatypeMismatch:
		return infra.KindMalformed
	default:
		return infra.KindUnavailable
	}
}
