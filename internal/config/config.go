// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-web-kit. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional YAML file, with built-in defaults applied last.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bind holds the TCP address the HTTP server listens on.
	Bind Bind `envPrefix:"BIND_"`

	// HTTP holds transport-level tunables for the inbound server.
	HTTP HTTP `envPrefix:"HTTP_"`

	// Security holds the signing secrets for session cookies and
	// service tokens.
	Security Security `envPrefix:"SECURITY_"`

	// Proxy holds settings for the outbound proxy-fetch client.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Storage holds the optional session-registry database settings.
	// An empty DSN disables the registry and keeps the scaffold
	// stateless.
	Storage Storage `envPrefix:"STORAGE_"`

	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// YAMLFilePath is the optional path to a YAML configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	YAMLFilePath string `env:"CONFIG"`
}

// Bind holds the listen address of the HTTP server.
type Bind struct {
	// Addr is the interface address to bind, e.g. "127.0.0.1" or
	// "0.0.0.0".
	// Env: BIND_ADDR
	Addr string `env:"ADDR"`

	// Port is the TCP port to bind.
	// Env: BIND_PORT
	Port int `env:"PORT"`
}

// HTTP holds transport tunables for the inbound server.
type HTTP struct {
	// TCPBacklog is the desired listen(2) backlog. Go's net.Listen
	// defers to the kernel somaxconn setting; the value is exported to
	// operators for tuning and recorded in startup logs.
	// Env: HTTP_TCP_BACKLOG
	TCPBacklog int `env:"TCP_BACKLOG"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it (e.g. "30s").
	// Env: HTTP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds the secrets and lifetimes for signed session cookies
// and service-to-service JWT tokens.
type Security struct {
	// CookieSecret is the HMAC-SHA256 key used to sign session cookies.
	// When empty, session cookies are not issued and inbound cookies
	// are ignored.
	// Env: SECURITY_COOKIE_SECRET
	CookieSecret string `env:"COOKIE_SECRET"`

	// CookieName is the name of the session cookie.
	// Env: SECURITY_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieTTL is how long a signed session cookie remains valid.
	// Env: SECURITY_COOKIE_TTL
	CookieTTL time.Duration `env:"COOKIE_TTL"`

	// TokenSignKey is the secret key used to sign and verify the JWT
	// tokens accepted on the admin surface. Must be kept confidential.
	// Env: SECURITY_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued service
	// token and validated on every admin request.
	// Env: SECURITY_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a service token remains valid
	// after issuance (e.g. "1h", "30m").
	// Env: SECURITY_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Proxy holds settings for the outbound proxy-fetch client.
type Proxy struct {
	// ForwardHeaders is the allow-list of inbound request headers that
	// are copied onto outbound proxy fetches. Everything else is
	// dropped.
	// Env: PROXY_FORWARD_HEADERS (comma-separated)
	ForwardHeaders []string `env:"FORWARD_HEADERS"`

	// Timeout is the per-request deadline for outbound fetches.
	// Env: PROXY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Storage groups the configuration for the optional persistence
// backend.
type Storage struct {
	// DB holds the session-registry database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the session-registry database.
type DB struct {
	// DSN is the Data Source Name. A "postgres://..." DSN selects the
	// pgx driver; a "sqlite:<path>" DSN selects the sqlite3 driver.
	// Empty disables the registry.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running
	// application (e.g. "1.2.3"). Exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// DefaultConfig returns the built-in defaults that every other
// configuration source is overlaid on. The cookie secret deliberately
// has no default.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Bind: Bind{
			Addr: "127.0.0.1",
			Port: 8080,
		},
		HTTP: HTTP{
			TCPBacklog:     128,
			RequestTimeout: 30 * time.Second,
		},
		Security: Security{
			CookieName:    "session",
			CookieTTL:     24 * time.Hour,
			TokenIssuer:   "go-web-kit",
			TokenDuration: time.Hour,
		},
		Proxy: Proxy{
			ForwardHeaders: []string{"Cookie", "DNT"},
			Timeout:        15 * time.Second,
		},
		App: App{
			Version: Version,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (first source wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withYAML().
		withDefaults().
		build()
}
