package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name        string
		headerValue string
		wantReused  bool
	}{
		{name: "generates an ID when none is sent", headerValue: ""},
		{name: "reuses a well-formed client ID", headerValue: "req-abc-123", wantReused: true},
		{name: "replaces an ID with spaces", headerValue: "bad id"},
		{name: "replaces an ID that is too long", headerValue: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "replaces an ID with control characters", headerValue: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			var fromContext string
			router.GET("/", func(c *gin.Context) {
				fromContext = GetRequestID(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			router.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.Equal(t, fromContext, got)
			if tt.wantReused {
				assert.Equal(t, tt.headerValue, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), 42)
	assert.Empty(t, GetRequestID(c))
}
