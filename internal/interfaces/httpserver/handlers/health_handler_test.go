package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/handlers"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/responses"
)

// MockPinger is a mock implementation of handlers.Pinger for testing.
type MockPinger struct {
	PingFunc func(ctx context.Context) error
	calls    int
}

func (m *MockPinger) Ping(ctx context.Context) error {
	m.calls++
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func setupHealthRouter(pinger *MockPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewHealthHandler(pinger, zerolog.Nop())
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthReportsUnreachableStore(t *testing.T) {
	pinger := &MockPinger{PingFunc: func(ctx context.Context) error { return errors.New("connection refused") }}
	router := setupHealthRouter(pinger)

	rec := get(router, "/health")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unreachable", body.Checks["database"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestReadyReportsUnreachableStore(t *testing.T) {
	pinger := &MockPinger{PingFunc: func(ctx context.Context) error { return errors.New("down") }}
	router := setupHealthRouter(pinger)

	rec := get(router, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not_ready"}`, rec.Body.String())
}

func TestLiveIgnoresStore(t *testing.T) {
	pinger := &MockPinger{PingFunc: func(ctx context.Context) error { return errors.New("down") }}
	router := setupHealthRouter(pinger)

	rec := get(router, "/live")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
	assert.Zero(t, pinger.calls)
}

func TestPingReceivesDeadline(t *testing.T) {
	var hadDeadline bool
	pinger := &MockPinger{PingFunc: func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}}
	router := setupHealthRouter(pinger)

	rec := get(router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hadDeadline)
}
