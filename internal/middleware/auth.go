package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is empty, authentication is disabled.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !matchesAny(key, validKeys):
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

// matchesAny compares key against every candidate in constant time.
func matchesAny(key string, candidates []string) bool {
	found := 0
	for _, candidate := range candidates {
		found |= subtle.ConstantTimeCompare([]byte(key), []byte(candidate))
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c)))
}
