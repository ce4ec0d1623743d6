package session

import "errors"

// Sentinel errors returned by [Codec.Verify]. Callers match against
// them with errors.Is.
var (
	// ErrNoCookieSecret is returned by NewCodec when no signing secret
	// is configured.
	ErrNoCookieSecret = errors.New("no cookie secret configured")

	// ErrMalformedCookie indicates a value that does not parse as a
	// signed cookie at all.
	ErrMalformedCookie = errors.New("malformed signed cookie")

	// ErrBadSignature indicates a structurally valid cookie whose
	// signature does not verify.
	ErrBadSignature = errors.New("signed cookie signature mismatch")

	// ErrCookieExpired indicates an authentic cookie past its TTL.
	ErrCookieExpired = errors.New("signed cookie expired")
)
