// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the signed-cookie layer of go-web-kit.
//
// A signed cookie value has the form
//
//	base64url(payload) | unix-timestamp | hex(hmac)
//
// where the HMAC-SHA256 signature covers the cookie name, the encoded
// payload, and the timestamp. Clients can read the payload but cannot
// alter it, shift its issue time, or move it to a cookie with another
// name without invalidating the signature.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"
	"sync"
	"time"
)

const fieldSeparator = "|"

// Codec signs and verifies cookie values with a single HMAC-SHA256
// secret. A Codec is safe for concurrent use; HMAC instances are pooled
// to avoid per-request allocations on the hot verify path.
type Codec struct {
	ttl     time.Duration
	hashers sync.Pool
}

// NewCodec constructs a Codec for the given secret and cookie lifetime.
// A zero ttl disables expiry checking. Returns [ErrNoCookieSecret] when
// the secret is empty: refusing to start beats silently issuing
// unsigned cookies.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, ErrNoCookieSecret
	}

	return &Codec{
		ttl: ttl,
		hashers: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(secret))
			},
		},
	}, nil
}

// Sign produces the signed wire form of value for the cookie called
// name, timestamped at the current time.
func (c *Codec) Sign(name, value string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	return encoded + fieldSeparator + ts + fieldSeparator + c.signature(name, encoded, ts)
}

// Verify checks raw against the codec's secret and TTL and returns the
// decoded payload.
//
// Sentinel errors, matchable with errors.Is:
//   - [ErrMalformedCookie] — raw does not have the three-field shape,
//     carries a non-numeric timestamp, or an undecodable payload;
//   - [ErrBadSignature]    — the signature does not match;
//   - [ErrCookieExpired]   — the signature matches but the timestamp is
//     older than the codec TTL.
//
// The signature is checked before the timestamp so that a forged
// timestamp can never be distinguished from any other forgery.
func (c *Codec) Verify(name, raw string) (string, error) {
	parts := strings.Split(raw, fieldSeparator)
	if len(parts) != 3 {
		return "", ErrMalformedCookie
	}
	encoded, ts, sig := parts[0], parts[1], parts[2]

	want := c.signature(name, encoded, ts)
	if !hmac.Equal([]byte(want), []byte(sig)) {
		return "", ErrBadSignature
	}

	issued, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", ErrMalformedCookie
	}
	if c.ttl > 0 && time.Since(time.Unix(issued, 0)) > c.ttl {
		return "", ErrCookieExpired
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMalformedCookie
	}

	return string(payload), nil
}

// signature computes the hex HMAC-SHA256 over name, encoded payload,
// and timestamp using a pooled hasher.
func (c *Codec) signature(name, encoded, ts string) string {
	h := c.hashers.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(name))
	h.Write([]byte(fieldSeparator))
	h.Write([]byte(encoded))
	h.Write([]byte(fieldSeparator))
	h.Write([]byte(ts))
	sum := h.Sum(nil)

	h.Reset()
	c.hashers.Put(h)

	return hex.EncodeToString(sum)
}
