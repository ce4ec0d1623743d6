package store

import (
	"context"

	"github.com/MKhiriev/go-web-kit/models"
)

// SessionRegistry tracks issued sessions so they can be revoked before
// their cookies expire. It is optional: a deployment without a DSN runs
// with a nil registry and stays fully stateless.
type SessionRegistry interface {
	// RegisterSession records a freshly issued session.
	RegisterSession(ctx context.Context, s models.Session) error

	// RevokeSession marks the session as revoked.
	RevokeSession(ctx context.Context, sessionID string) error

	// IsRevoked reports whether the session has been revoked. Unknown
	// sessions are not revoked: the registry may have been purged while
	// the cookie is still cryptographically valid.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)

	// GetSession returns the stored record for the session.
	GetSession(ctx context.Context, sessionID string) (models.SessionRecord, error)

	// PurgeExpired deletes records whose sessions expired before now
	// and returns the number of rows removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
