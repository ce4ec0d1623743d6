package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidBindConfigs indicates an out-of-range listen port.
	ErrInvalidBindConfigs = errors.New("invalid bind configuration")
	// ErrInvalidHTTPConfigs indicates a negative backlog or request
	// timeout.
	ErrInvalidHTTPConfigs = errors.New("invalid http configuration")
	// ErrInvalidSecurityConfigs indicates missing cookie settings
	// (for example, empty cookie name or non-positive TTL).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidProxyConfigs indicates invalid outbound fetch settings
	// (for example, non-positive timeout).
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
)
