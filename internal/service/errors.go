package service

import "errors"

var (
	// ErrSessionsDisabled indicates that no cookie secret is configured
	// and session cookies can neither be issued nor verified.
	ErrSessionsDisabled = errors.New("session cookies are disabled")

	// ErrSessionRevoked indicates a cryptographically valid cookie whose
	// session has been administratively revoked.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrRegistryDisabled indicates a revocation operation on a
	// stateless deployment (no registry DSN).
	ErrRegistryDisabled = errors.New("session registry is disabled")

	// ErrTokensDisabled indicates that no token sign key is configured.
	ErrTokensDisabled = errors.New("service tokens are disabled")

	// ErrTokenIsExpired indicates a service token past its "exp" claim.
	ErrTokenIsExpired = errors.New("service token is expired")

	// ErrVersionIsNotSpecified indicates a missing application version.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrMalformedVersion indicates a configured version that is not a
	// bare "MAJOR.MINOR.PATCH" string.
	ErrMalformedVersion = errors.New("application version is not semantic")
)
