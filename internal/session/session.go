package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-kit/models"
	"github.com/google/uuid"
)

// New mints a fresh anonymous session with a UUIDv4 identifier valid
// for ttl from now.
func New(ttl time.Duration) models.Session {
	now := time.Now()
	return models.Session{
		ID:        uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// BuildCookie assembles the http.Cookie carrying the already-signed
// session value. HttpOnly and SameSite=Lax are always set; the cookie
// is scoped to the whole site.
func BuildCookie(name, signedValue string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    signedValue,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
