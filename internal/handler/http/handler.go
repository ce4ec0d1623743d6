package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-web-kit/internal/adapter"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/service"
)

type Handler struct {
	services *service.Services
	proxy    adapter.ProxyClient

	logger *logger.Logger
}

func NewHandler(services *service.Services, proxy adapter.ProxyClient, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		proxy:    proxy,
		logger:   logger,
	}
}

// Fetch proxies a GET to a sibling service on behalf of the inbound
// request r. A relative path is resolved against r's scheme and host;
// only the configured header allow-list is forwarded. Upstream HTTP
// errors are reported in the response, not as Go errors.
func (h *Handler) Fetch(ctx context.Context, r *http.Request, path string) (*adapter.ProxyResponse, error) {
	return h.proxy.Fetch(ctx, r, path)
}
