package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/magpielabs/magpie/pkg/config"
	"github.com/magpielabs/magpie/pkg/dispatcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthDispatcher(t *testing.T, sources string) *dispatcher.Dispatcher {
	t.Helper()
	dir := t.TempDir()

	sourcesPath := filepath.Join(dir, "sources.json")
	require.NoError(t, os.WriteFile(sourcesPath, []byte(sources), 0644))

	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "tasks.db")
	cfg.UserDBPath = filepath.Join(dir, "users.db")
	cfg.SourcesPath = sourcesPath

	d, err := dispatcher.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { d.Shutdown() })
	return d
}

// TestHealthEndpoint tests the liveness check
func TestHealthEndpoint(t *testing.T) {
	d := newHealthDispatcher(t, "[]")
	srv := httptest.NewServer(NewHealthServer(d).GetHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)

	// Only GET is served.
	resp, err = http.Post(srv.URL+"/health", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// TestReadyEndpoint tests readiness with and without a source catalog
func TestReadyEndpoint(t *testing.T) {
	empty := newHealthDispatcher(t, "[]")
	srv := httptest.NewServer(NewHealthServer(empty).GetHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body ReadyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not ready", body.Status)
	assert.Equal(t, "Source catalog is empty", body.Message)
	assert.Equal(t, "empty", body.Checks["catalog"])
	assert.Equal(t, "ok", body.Checks["storage"])

	loaded := newHealthDispatcher(t, `[
	  {"id": "s1", "name": "S1", "url": "http://example.com/feed.xml",
	   "categories": ["news"], "locations": ["Global"]}
	]`)
	srv2 := httptest.NewServer(NewHealthServer(loaded).GetHandler())
	defer srv2.Close()

	resp2, err := http.Get(srv2.URL + "/ready")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var body2 ReadyResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body2))
	assert.Equal(t, "ready", body2.Status)
	assert.Equal(t, "1 sources", body2.Checks["catalog"])
	assert.Equal(t, "0 registered", body2.Checks["collectors"])
}
