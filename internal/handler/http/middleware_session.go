package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/session"
	"github.com/MKhiriev/go-web-kit/internal/utils"
	"github.com/MKhiriev/go-web-kit/models"
)

// withSession is the signed-cookie middleware.
//
// Every response carries the session cookie. When the inbound request
// already holds a cookie that verifies (signature, TTL, revocation),
// the SAME cookie string is re-set, so a well-behaved client keeps one
// stable session for the cookie's lifetime. A missing, tampered,
// expired, or revoked cookie is replaced by a freshly issued session.
//
// The resulting session is stored in the request context under
// [utils.SessionCtxKey] for downstream handlers.
//
// When no cookie secret is configured the middleware is a passthrough.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc := h.services.SessionService
		if !svc.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		var sess models.Session
		var signed string

		if c, err := r.Cookie(svc.CookieName()); err == nil {
			verified, verr := svc.Verify(r.Context(), c.Value)
			if verr == nil {
				sess, signed = verified, c.Value
			} else {
				log.Debug().Err(verr).Msg("inbound session cookie rejected")
			}
		}

		if signed == "" {
			issued, value, err := svc.Issue(r.Context())
			if err != nil {
				// The request can still be served; it just runs
				// sessionless.
				log.Err(err).Msg("failed to issue session")
				next.ServeHTTP(w, r)
				return
			}
			sess, signed = issued, value
		}

		http.SetCookie(w, session.BuildCookie(svc.CookieName(), signed, svc.CookieTTL()))

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
