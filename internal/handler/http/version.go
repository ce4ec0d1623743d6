package http

import (
	"net/http"
)

// getServerVersion serves the semantic version the binary was configured
// with as a bare plain-text body. Deployment tooling scrapes this
// endpoint to confirm which build a host is running, so the body carries
// nothing but the version string itself.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
