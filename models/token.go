// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// ServiceToken wraps a JWT used by sibling services to call the admin
// surface (session revocation endpoints).
//
// It embeds [jwt.Token] for low-level operations and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds
// the compact serialized form ready to be placed in an Authorization
// header.
type ServiceToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization; only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is a cached copy of the "sub" claim, the name of the
	// calling service.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *ServiceToken) String() string {
	return t.SignedString
}
