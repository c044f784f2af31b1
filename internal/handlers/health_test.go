package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name   string
	result HealthCheck
}

func (s stubChecker) Name() string                                { return s.name }
func (s stubChecker) CheckHealth(ctx context.Context) HealthCheck { return s.result }

func TestHealthHandlerPing(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	handler := NewHealthHandler("goUserSearch", "test", logger)

	req := httptest.NewRequest("GET", "/health?ping=true", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pong", response["ping"])
}

func TestHealthHandlerAllHealthy(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	handler := NewHealthHandler("goUserSearch", "test", logger)
	handler.AddChecker(stubChecker{name: "database", result: HealthCheck{Status: "healthy", ResponseTimeMs: 1}})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "goUserSearch", response.Service)
	assert.Contains(t, response.Checks, "database")
}

func TestHealthHandlerUnhealthyChecker(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	handler := NewHealthHandler("goUserSearch", "test", logger)
	handler.AddChecker(stubChecker{name: "database", result: HealthCheck{
		Status: "unhealthy",
		Error:  "database connection failed: no such file",
	}})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response HealthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "unhealthy", response.Checks["database"].Status)
}
