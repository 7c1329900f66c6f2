// Package app provides router configuration.
package app

import (
	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/http"
	"github.com/guttosm/portfolio-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	source *ContentSource,
	authService service.AuthService,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	for name, checker := range source.Checkers {
		healthHandler.RegisterChecker(name, checker)
	}
	if source.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker(source.CircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		ContentService: services.Content,
		SearchService:  services.Search,
		FeedService:    services.Feed,
	}
	// assigned only when set so the interface stays nil
	if authService != nil {
		routerCfg.AuthService = authService
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
