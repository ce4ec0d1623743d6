package store

import "errors"

var (
	// ErrUnsupportedDSN indicates a DSN whose scheme maps to no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported registry DSN")

	// ErrSessionAlreadyRegistered indicates a duplicate session ID.
	ErrSessionAlreadyRegistered = errors.New("session already registered")

	// ErrSessionNotFound indicates a session ID unknown to the registry.
	ErrSessionNotFound = errors.New("session not found")
)
