package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per request.
// The level follows the status code: 5xx error, 4xx warn, otherwise info.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", route).
			Int("status_code", statusCode).
			Int("bytes", c.Writer.Size()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if claims, ok := GetClaims(c); ok {
			ctx = ctx.Str("admin", claims.Username)
		}
		log := ctx.Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}
	}
}
