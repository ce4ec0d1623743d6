package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-web-kit/internal/adapter"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/service"
	"github.com/MKhiriev/go-web-kit/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer so the server goroutine can write
// log lines while the test goroutine reads them.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestWithLogging_AccessLogFields verifies the per-request access log
// line: it names the path and status, and carries the session ID bound
// by the session middleware earlier in the chain.
func TestWithLogging_AccessLogFields(t *testing.T) {
	var buf syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	cfg := handlerTestConfig()
	services, err := service.NewServices(&store.Storages{}, cfg, log)
	require.NoError(t, err)
	h := NewHandler(services, adapter.NewProxyClient(cfg.Proxy), log)

	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, `"path":"/api/health"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":204`)
	assert.Contains(t, out, `"session_id"`)
	assert.Contains(t, out, "request served")
}

// TestWithLogging_NoSessionField verifies that on a stateless deployment
// without a cookie secret the access log simply omits the session field.
func TestWithLogging_NoSessionField(t *testing.T) {
	var buf syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	cfg := handlerTestConfig()
	cfg.Security.CookieSecret = ""
	services, err := service.NewServices(&store.Storages{}, cfg, log)
	require.NoError(t, err)
	h := NewHandler(services, adapter.NewProxyClient(cfg.Proxy), log)

	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, `"path":"/api/health"`)
	assert.NotContains(t, out, `"session_id"`)
}
