package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/metrics"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	// APIKeys protect admin routes when AuthService is nil.
	APIKeys     []string
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string

	ContentService service.ContentService
	SearchService  service.SearchService
	FeedService    service.FeedService
	// AuthService enables admin login and JWT protected admin routes.
	AuthService service.AuthService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the portfolio service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	if cfg.FeedService != nil {
		router.GET("/rss.xml", NewSearchHandler(cfg.SearchService, cfg.FeedService).RSS)
	}

	api := router.Group("/api")
	if cfg.AuthService != nil {
		api.Use(middleware.OptionalJWTAuth(cfg.AuthService))
	}

	var public []PublicRouteGroup
	if cfg.ContentService != nil {
		public = append(public, NewContentRoutes(cfg.ContentService))
	}
	if cfg.SearchService != nil {
		public = append(public, NewSearchRoutes(cfg.SearchService, cfg.FeedService))
	}
	if cfg.AuthService != nil {
		public = append(public, NewAuthRoutes(cfg.AuthService))
	}
	for _, g := range public {
		g.RegisterPublicRoutes(api)
	}

	if cfg.ContentService != nil {
		NewAdminRoutes(cfg.ContentService).RegisterProtectedRoutes(api, &cfg)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
