// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Content *service.ContentServiceImpl
	Search  service.SearchService
	Feed    service.FeedService
}

// InitializeServices initializes business logic services over repo.
func InitializeServices(repo repository.ContentRepositoryInterface, cfg config.Config) *ServiceComponents {
	content := service.NewContentService(repo, service.ContentConfig{
		PageSize:        cfg.Content.PageSize,
		MaxVisiblePages: cfg.Content.MaxVisiblePages,
		CacheTTL:        cfg.Cache.TTL,
		SingleFlight:    cfg.Cache.SingleFlight,
	})

	return &ServiceComponents{
		Content: content,
		Search:  service.NewSearchService(content, cfg.Content.SiteURL),
		Feed: service.NewFeedService(content, service.FeedOptions{
			Title:       cfg.Content.SiteTitle,
			SiteURL:     cfg.Content.SiteURL,
			Description: cfg.Content.SiteDescription,
			Limit:       cfg.Content.FeedLimit,
		}),
	}
}

// WarmCaches preloads the content caches. Errors are logged, not returned:
// a cold cache only costs the first request a load.
func WarmCaches(ctx context.Context, content *service.ContentServiceImpl) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	if err := content.Warm(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache warm-up incomplete")
		return
	}
	log.Info().Dur("duration", time.Since(start)).Msg("Content caches warmed")
}
