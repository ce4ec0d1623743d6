// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the shared data types exchanged between the
// handler, service, store, and adapter layers of go-web-kit.
package models

import "time"

// Session describes an anonymous browser session issued by the scaffold.
//
// A session is represented on the wire as a signed cookie holding the
// session ID; the struct itself never leaves the server process. Sessions
// carry no identity — they exist so that sibling services receiving
// proxied requests can correlate calls from the same browser.
type Session struct {
	// ID is the session identifier, a UUIDv4 string. It is the payload
	// of the signed session cookie.
	ID string `json:"id"`

	// IssuedAt is the time the session cookie was first signed.
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt is the time after which the cookie no longer verifies.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// SessionRecord is the persisted form of a [Session] kept by the optional
// session registry. RevokedAt is nil while the session is live.
type SessionRecord struct {
	// ID is the session identifier being tracked.
	ID string `json:"id"`

	// IssuedAt mirrors [Session.IssuedAt].
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt mirrors [Session.ExpiresAt].
	ExpiresAt time.Time `json:"expires_at"`

	// RevokedAt is the time the session was administratively revoked,
	// or nil if it has not been.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Revoked reports whether the record has been administratively revoked.
func (r SessionRecord) Revoked() bool {
	return r.RevokedAt != nil
}
