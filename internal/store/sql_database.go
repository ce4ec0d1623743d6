// Package store implements the optional SQL-backed session registry.
// It supports PostgreSQL (via pgx) and SQLite (via mattn/go-sqlite3),
// selected by the DSN scheme.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the opened sql.DB together with the driver-specific pieces
// the registry needs: the goose dialect for migrations and the squirrel
// placeholder format for query building.
type DB struct {
	*sql.DB

	dialect     string
	placeholder sq.PlaceholderFormat
	logger      *logger.Logger
}

// NewConnect opens the session-registry database described by cfg.DSN,
// pings it, and returns the wrapped handle.
//
// DSN schemes:
//   - "postgres://" or "postgresql://" — pgx driver, $N placeholders;
//   - "sqlite:<path>"                  — sqlite3 driver, ? placeholders.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn, placeholder, err := resolveDriver(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("unsupported registry DSN")
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return &DB{
		DB:          conn,
		dialect:     driver,
		placeholder: placeholder,
		logger:      log,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func resolveDriver(dsn string) (driver, cleanDSN string, placeholder sq.PlaceholderFormat, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, sq.Dollar, nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite3", strings.TrimPrefix(dsn, "sqlite:"), sq.Question, nil
	default:
		return "", "", nil, ErrUnsupportedDSN
	}
}
