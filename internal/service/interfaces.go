package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-web-kit/models"
)

// SessionService issues, verifies, and revokes the anonymous sessions
// carried in signed cookies.
type SessionService interface {
	// Issue mints a new session and returns it together with the signed
	// cookie value to set on the response. The session is recorded in
	// the registry when one is configured.
	Issue(ctx context.Context) (models.Session, string, error)

	// Verify checks a raw inbound cookie value. It returns the session
	// when the signature, TTL, and (if a registry is configured)
	// revocation status all pass.
	Verify(ctx context.Context, raw string) (models.Session, error)

	// Revoke marks a session as revoked in the registry. Returns
	// [ErrRegistryDisabled] when the deployment is stateless.
	Revoke(ctx context.Context, sessionID string) error

	// Get returns the registry record for a session ID.
	Get(ctx context.Context, sessionID string) (models.SessionRecord, error)

	// Enabled reports whether signed session cookies are configured at
	// all (a cookie secret is present).
	Enabled() bool

	// RegistryEnabled reports whether a revocation registry is
	// configured.
	RegistryEnabled() bool

	// CookieName returns the configured session cookie name.
	CookieName() string

	// CookieTTL returns the configured session cookie lifetime.
	CookieTTL() time.Duration
}

// TokenService validates the JWT bearer tokens presented by sibling
// services on the admin surface.
type TokenService interface {
	// IssueToken signs a service token for the named caller.
	IssueToken(ctx context.Context, subject string) (models.ServiceToken, error)

	// ParseToken validates a raw token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.ServiceToken, error)
}

// AppInfoService exposes build/application metadata.
type AppInfoService interface {
	// GetAppVersion returns the semantic version of the running
	// application.
	GetAppVersion(ctx context.Context) string
}
