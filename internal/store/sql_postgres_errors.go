package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the PostgreSQL error code carried by err, or ""
// when err did not originate from the pgx driver (e.g. the sqlite3
// backend is in use).
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
