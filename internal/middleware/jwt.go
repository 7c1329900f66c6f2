package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/service"
)

// ClaimsKey is the gin context key holding the *dto.Claims of an authenticated request.
const ClaimsKey = "claims"

// JWTAuth returns a middleware that requires a valid admin bearer token.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims set by JWTAuth.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok
}

// AdminAuth picks the protection of admin routes: JWT when an auth service
// is configured, otherwise the API keys (open when there are none).
func AdminAuth(authService service.AuthService, apiKeys []string) gin.HandlerFunc {
	if authService != nil {
		return JWTAuth(authService)
	}
	return APIKeyAuth(apiKeys)
}

// OptionalJWTAuth sets the claims when a valid bearer token is present and
// never rejects the request. Public routes use it to unlock admin-only
// options such as listing drafts.
func OptionalJWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			if claims, err := authService.ValidateToken(c.Request.Context(), strings.TrimSpace(tokenString)); err == nil {
				c.Set(ClaimsKey, claims)
			}
		}
		c.Next()
	}
}
