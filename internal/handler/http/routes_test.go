package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── /api/version ──────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	semver := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	assert.Regexp(t, semver, string(body))
}

// TestGetServerVersion_MethodNotAllowed verifies that a wrong method on
// a known route is answered with 405, not 404.
func TestGetServerVersion_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/version", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// TestTrailingSlashRedirect verifies that a trailing-slash request is
// permanently redirected to the canonical path.
func TestTrailingSlashRedirect(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(server.URL + "/api/version/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)

	location := resp.Header.Get("Location")
	assert.True(t, strings.HasSuffix(location, "/api/version"), "unexpected redirect target: %s", location)
}

// ── /api/health ───────────────────────────────────────────────────────────────

func TestGetHealth(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ── unknown routes ────────────────────────────────────────────────────────────

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── admin surface ─────────────────────────────────────────────────────────────

// TestAdminSurfaceRequiresToken verifies that the admin routes reject
// unauthenticated requests.
func TestAdminSurfaceRequiresToken(t *testing.T) {
	h := newTestHandler(t, newMemoryRegistry(), nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/sessions/revoke", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/sessions/some-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
