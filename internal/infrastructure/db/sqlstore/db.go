// Package sqlstore implements the user and activity repositories on top of
// database/sql through sqlx. Two dialects are supported: SQLite (modernc,
// pure Go) for local runs and tests, and PostgreSQL through pgx.
package sqlstore

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const defaultTimeout = 10 * time.Second

// Dialects understood by Open and Apply.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

func init() {
	// sqlx only knows the mattn driver name for sqlite.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database for dialect and verifies it with a ping.
func Open(ctx context.Context, dialect, dsn string, opts Options) (*sqlx.DB, error) {
	driver, err := driverName(dialect)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	if dialect == DialectSQLite {
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sql ping: %w", err)
	}
	return db, nil
}

func driverName(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("sqlstore: unsupported dialect %q", dialect)
	}
}
