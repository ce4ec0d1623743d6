package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/models"
	"github.com/jackc/pgerrcode"
)

// sessionRegistry is the SQL-backed implementation of
// [SessionRegistry]. It tracks issued sessions in the "sessions" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
type sessionRegistry struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRegistry constructs a [SessionRegistry] backed by the
// provided database connection and logger.
func NewSessionRegistry(db *DB, logger *logger.Logger) SessionRegistry {
	logger.Debug().Msg("creating session registry")
	return &sessionRegistry{
		db:     db,
		logger: logger,
	}
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the active driver.
func (r *sessionRegistry) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.placeholder)
}

// RegisterSession persists a freshly issued session.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSessionAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRegistry) RegisterSession(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert("sessions").
		Columns("id", "issued_at", "expires_at").
		Values(s.ID, s.IssuedAt, s.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build register query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRegistry.RegisterSession").Msg("error inserting session")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrSessionAlreadyRegistered
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// RevokeSession stamps revoked_at on the session row.
//
// Error handling:
//   - zero rows affected → [ErrSessionNotFound].
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *sessionRegistry) RevokeSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Update("sessions").
		Set("revoked_at", time.Now()).
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRegistry.RevokeSession").Msg("error revoking session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// IsRevoked reports whether the session has been revoked. A session
// unknown to the registry is NOT revoked; its cookie is still
// cryptographically valid and the row may simply have been purged.
func (r *sessionRegistry) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	record, err := r.GetSession(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return record.Revoked(), nil
}

// GetSession retrieves the stored record for a session ID.
//
// Error handling:
//   - sql.ErrNoRows → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRegistry) GetSession(ctx context.Context, sessionID string) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("id", "issued_at", "expires_at", "revoked_at").
		From("sessions").
		Where(sq.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("build get query: %w", err)
	}

	var record models.SessionRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.ID, &record.IssuedAt, &record.ExpiresAt, &record.RevokedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRegistry.GetSession").Msg("error scanning session row")
		return models.SessionRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// PurgeExpired deletes sessions whose expiry is in the past and returns
// the number of rows removed.
func (r *sessionRegistry) PurgeExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Delete("sessions").
		Where(sq.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRegistry.PurgeExpired").Msg("error purging sessions")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return res.RowsAffected()
}
