package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
)

// httpServer wraps http.Server with an explicit bind step so the
// listener can be created (and its errors surfaced) before serving
// begins.
type httpServer struct {
	server   *http.Server
	addr     string
	backlog  int
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg *config.StructuredConfig, logger *logger.Logger) *httpServer {
	addr := net.JoinHostPort(cfg.Bind.Addr, strconv.Itoa(cfg.Bind.Port))

	return &httpServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: cfg.HTTP.RequestTimeout,
			ReadTimeout:       cfg.HTTP.RequestTimeout,
		},
		addr:    addr,
		backlog: cfg.HTTP.TCPBacklog,
		logger:  logger,
	}
}

// Bind creates the TCP listener on the configured address. It is
// idempotent: a second call on an already-bound server is a no-op.
// The accept backlog itself is a kernel tunable (somaxconn); the
// configured value is logged so operators can reconcile the two.
func (h *httpServer) Bind() error {
	if h.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", h.addr)
	if err != nil {
		return err
	}

	h.listener = listener
	h.logger.Info().
		Str("addr", h.addr).
		Int("tcp_backlog", h.backlog).
		Msg("HTTP server bound")

	return nil
}

// RunServer binds (if not yet bound) and serves until Shutdown.
func (h *httpServer) RunServer() {
	if err := h.Bind(); err != nil {
		h.logger.Error().Err(err).Msgf("HTTP server bind: %v", err)
		return
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msgf("HTTP server Serve: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msgf("HTTP server Shutdown: %v", err)
	}
}
