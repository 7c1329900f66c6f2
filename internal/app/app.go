// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/http"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	source   *ContentSource
}

// Close releases resources held by the content source.
func (a *App) Close(ctx context.Context) error {
	return a.source.Close(ctx)
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger first (needed by other components)
	if err := InitializeLogger(cfg.Log); err != nil {
		return nil, err
	}

	source := InitializeContentSource(ctx, cfg)
	services := InitializeServices(source.Repository, cfg)
	if cfg.Content.Warm {
		WarmCaches(ctx, services.Content)
	}

	authService := InitializeAuth(cfg.Auth)
	routerComponents := InitializeRouter(services, source, authService, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		source:   source,
	}, nil
}
