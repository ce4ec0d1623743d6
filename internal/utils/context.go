// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP
// response writing, and service-token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-web-kit/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages
// that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the verified (or freshly issued)
// session is stored in the request context by the session middleware.
var SessionCtxKey = contextKey("session")

// ServiceCtxKey is the key under which the authenticated caller service
// name is stored by the admin auth middleware.
var ServiceCtxKey = contextKey("service")

// GetSessionFromContext retrieves the current session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — a session was attached by the middleware
//   - ok == false — no session in the context
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	return s, ok
}

// GetServiceFromContext retrieves the authenticated service name from
// the context, with the same ok-flag convention as
// [GetSessionFromContext].
func GetServiceFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ServiceCtxKey).(string)
	return s, ok
}
