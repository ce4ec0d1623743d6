package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/service"
	"github.com/MKhiriev/go-web-kit/internal/utils"
)

// auth is an HTTP middleware that protects the admin surface with
// service-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token via [utils.ParseBearerToken], validates it with
// [service.TokenService.ParseToken], and — on success — stores the
// calling service's name in the request context under
// [utils.ServiceCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not of the exact "<scheme> <token>" form.
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the caller's service name so downstream handlers can
		// attribute admin actions without re-parsing the token.
		ctx = context.WithValue(ctx, utils.ServiceCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
