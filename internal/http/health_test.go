package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Readiness(t *testing.T) {
	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{Name: "health-test-open", FailureThreshold: 1, Timeout: time.Hour})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "no checkers",
			setupHandler:   NewHealthHandler,
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "healthy checker and closed breaker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker(circuitbreaker.New(circuitbreaker.Config{Name: "health-test-closed"}))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "failing checker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return errors.New("no primary") }))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
		},
		{
			name: "open breaker",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker(openBreaker())
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler().Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedState, body["status"])
		})
	}
}

func TestHealthHandler_ReadinessReportsBreakers(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterCircuitBreaker(circuitbreaker.New(circuitbreaker.Config{Name: "content-source"}))
	router := gin.New()
	h.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body struct {
		CircuitBreakers map[string]circuitbreaker.Stats `json:"circuit_breakers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "closed", body.CircuitBreakers["content-source"].State)
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
