package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RedirectSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withSession)
	router.Use(h.withLogging)

	// scaffold routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)
	})

	// admin surface, service-token protected
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/sessions/revoke", h.revokeSession)
		r.Get("/api/sessions/{id}", h.getSession)
	})

	return router
}
