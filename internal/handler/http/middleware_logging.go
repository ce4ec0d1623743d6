package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/utils"
)

// withLogging emits one access-log line per request once the handler has
// finished. It runs after the session middleware so the line can carry
// the session ID alongside the trace ID already bound to the request
// logger, letting log queries group requests by browser.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("duration", time.Since(start))
		if session, ok := utils.GetSessionFromContext(r.Context()); ok {
			event = event.Str("session_id", session.ID)
		}
		event.Msg("request served")
	})
}
