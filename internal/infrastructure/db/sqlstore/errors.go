package sqlstore

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

const pgUniqueViolation = "23505"

// uniqueViolation maps a unique-constraint failure on users to the matching
// domain sentinel. It returns nil for any other error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fieldSentinel(pgErr.ConstraintName)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fieldSentinel(liteErr.Error())
	}
	return nil
}

func fieldSentinel(s string) error {
	switch {
	case strings.Contains(s, "username"):
		return domain.ErrDuplicateUsername
	case strings.Contains(s, "email"):
		return domain.ErrDuplicateEmail
	default:
		return nil
	}
}
