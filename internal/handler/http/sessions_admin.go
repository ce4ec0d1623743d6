package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/service"
	"github.com/MKhiriev/go-web-kit/internal/store"
	"github.com/MKhiriev/go-web-kit/internal/utils"
	"github.com/MKhiriev/go-web-kit/models"
	"github.com/go-chi/chi/v5"
)

// revokeSession handles POST /api/sessions/revoke. It marks a session
// as revoked in the registry so its still-valid cookie stops being
// accepted.
//
// Responses:
//   - 200 with a [models.RevokeSessionResponse] on success;
//   - 400 on a malformed body or missing session_id;
//   - 404 when the session is unknown to the registry;
//   - 503 when the deployment runs without a registry.
func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RevokeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("failed to decode revoke request")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON"}, http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: "session_id is required"}, http.StatusBadRequest)
		return
	}

	err := h.services.SessionService.Revoke(r.Context(), req.SessionID)
	switch {
	case errors.Is(err, service.ErrRegistryDisabled):
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusServiceUnavailable)
		return
	case errors.Is(err, store.ErrSessionNotFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusNotFound)
		return
	case err != nil:
		log.Err(err).Str("session_id", req.SessionID).Msg("failed to revoke session")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	caller, _ := utils.GetServiceFromContext(r.Context())
	log.Info().Str("session_id", req.SessionID).Str("revoked_by", caller).Msg("session revoked")

	utils.WriteJSON(w, models.RevokeSessionResponse{SessionID: req.SessionID, Revoked: true}, http.StatusOK)
}

// getSession handles GET /api/sessions/{id} and returns the registry
// record for a session.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID := chi.URLParam(r, "id")

	record, err := h.services.SessionService.Get(r.Context(), sessionID)
	switch {
	case errors.Is(err, service.ErrRegistryDisabled):
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusServiceUnavailable)
		return
	case errors.Is(err, store.ErrSessionNotFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusNotFound)
		return
	case err != nil:
		log.Err(err).Str("session_id", sessionID).Msg("failed to load session")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
