package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeloop/vibeloop/internal/app"
	"github.com/vibeloop/vibeloop/internal/config"
)

func newHandler(t *testing.T, writeLimit int) http.Handler {
	t.Helper()
	a, err := app.New(context.Background(), &config.Config{
		StorageDriver:   "memory",
		RefreshInterval: time.Minute,
		WriteRateLimit:  writeLimit,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return SetupRoutes(a)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	h := newHandler(t, 100)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/members", "", http.StatusOK},
		{http.MethodGet, "/api/stats", "", http.StatusOK},
		{http.MethodPut, "/api/members/1/mood", `{"mood":"good"}`, http.StatusOK},
		{http.MethodPatch, "/api/goals/g1", `{"completed":true}`, http.StatusOK},
		{http.MethodDelete, "/api/goals/g1", "", http.StatusOK},
		{http.MethodPost, "/api/members", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	t.Run("metrics exposition", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "vibeloop_http_requests_total")
	})
}

func TestSetupRoutes_RateLimitsWrites(t *testing.T) {
	h := newHandler(t, 1)
	serve(h, http.MethodGet, "/api/members", "")

	first := serve(h, http.MethodPatch, "/api/goals/g1", `{"completed":true}`)
	second := serve(h, http.MethodPatch, "/api/goals/g1", `{"completed":false}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
