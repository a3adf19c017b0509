package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes recruitsync reacts to.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUndefinedTable         = "42P01"
	pgCodeInvalidColumnReference = "42P10"
)

// IsUndefinedTable reports whether err says a referenced table does not exist.
func IsUndefinedTable(err error) bool {
	return hasCode(err, pgCodeUndefinedTable)
}

// IsMissingConflictTarget reports whether an ON CONFLICT clause named columns
// that carry no unique index or constraint.
func IsMissingConflictTarget(err error) bool {
	return hasCode(err, pgCodeInvalidColumnReference)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
