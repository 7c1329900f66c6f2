package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// ContentRoutes registers the read-only content API.
type ContentRoutes struct {
	handler *ContentHandler
}

// NewContentRoutes creates content routes.
func NewContentRoutes(content service.ContentService) *ContentRoutes {
	return &ContentRoutes{handler: NewContentHandler(content)}
}

// RegisterPublicRoutes registers listing, item, tag, resume and skills routes.
func (r *ContentRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/:collection", r.handler.List)
	rg.GET("/content/:collection/:slug", r.handler.Get)
	rg.GET("/tags", r.handler.Tags)
	rg.GET("/resume", r.handler.Resume)
	rg.GET("/skills", r.handler.Skills)
	rg.GET("/pagination", Paginate)
}

// SearchRoutes registers search routes.
type SearchRoutes struct {
	handler *SearchHandler
}

// NewSearchRoutes creates search routes.
func NewSearchRoutes(search service.SearchService, feed service.FeedService) *SearchRoutes {
	return &SearchRoutes{handler: NewSearchHandler(search, feed)}
}

// RegisterPublicRoutes registers the search and index routes.
func (r *SearchRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", r.handler.Search)
	rg.GET("/search/index", r.handler.Index)
}

// AuthRoutes registers the admin login route.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService)}
}

// RegisterPublicRoutes registers POST /auth/login.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", r.handler.Login)
}

// AdminRoutes registers cache administration.
type AdminRoutes struct {
	handler *AdminHandler
}

// NewAdminRoutes creates admin routes.
func NewAdminRoutes(content service.ContentService) *AdminRoutes {
	return &AdminRoutes{handler: NewAdminHandler(content)}
}

// RegisterProtectedRoutes registers /admin routes behind AdminAuth.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AuthService, cfg.APIKeys))

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		admin.Use(limiter.AdminRateLimit())
	}

	admin.GET("/cache", r.handler.CacheStats)
	admin.DELETE("/cache", r.handler.ClearCache)
	admin.DELETE("/cache/:key", r.handler.EvictCache)
}
