package models

// ErrorResponse is the JSON envelope returned by the scaffold's own API
// endpoints on failure.
type ErrorResponse struct {
	// Error is a short, human-readable description of the failure.
	Error string `json:"error"`
}

// RevokeSessionRequest is the body of POST /api/sessions/revoke.
type RevokeSessionRequest struct {
	// SessionID is the identifier of the session to revoke.
	SessionID string `json:"session_id"`
}

// RevokeSessionResponse confirms a revocation.
type RevokeSessionResponse struct {
	// SessionID echoes the revoked session identifier.
	SessionID string `json:"session_id"`

	// Revoked is true when the session registry recorded the revocation.
	Revoked bool `json:"revoked"`
}
