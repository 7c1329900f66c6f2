// Package app provides content source initialization.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/http"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ContentSource holds the repository the services read from and the
// infrastructure the readiness probe reports on.
type ContentSource struct {
	Repository     repository.ContentRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
	Checkers       map[string]http.HealthChecker

	db *repository.MongoDB
}

// Close releases the database connection, if any.
func (s *ContentSource) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close(ctx)
}

// InitializeContentSource selects where content is read from. Files under
// cfg.Content.Dir are always available; when MongoDB is enabled and reachable
// it becomes the source, guarded by a circuit breaker.
func InitializeContentSource(ctx context.Context, cfg config.Config) *ContentSource {
	files := repository.NewFileRepository(cfg.Content.Dir)
	source := &ContentSource{
		Repository: files,
		Checkers: map[string]http.HealthChecker{
			"content_dir": contentDirChecker(cfg.Content.Dir),
		},
	}

	if !cfg.Database.Enabled {
		log.Info().Str("dir", cfg.Content.Dir).Msg("Serving content from files")
		return source
	}

	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with file content")
		return source
	}
	log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")

	mongoRepo := repository.NewMongoRepository(db)
	if cfg.Database.Seed {
		seedContent(ctx, mongoRepo, files)
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Database.CircuitBreakerTimeout,
		Name:             "mongodb-content",
	})

	source.db = db
	source.Repository = repository.NewContentRepositoryWithCircuitBreaker(mongoRepo, cb)
	source.CircuitBreaker = cb
	source.Checkers = map[string]http.HealthChecker{
		"mongodb": http.HealthCheckerFunc(db.HealthCheck),
	}
	return source
}

// seedContent copies the file content into MongoDB. Failures are logged and
// the service keeps whatever the database already holds.
func seedContent(ctx context.Context, dst *repository.MongoRepository, src repository.ContentRepositoryInterface) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := dst.Seed(ctx, src)
	if err != nil {
		log.Warn().Err(err).Int("seeded", n).Msg("Failed to seed MongoDB from files")
		return
	}
	log.Info().Int("seeded", n).Msg("Seeded MongoDB from files")
}

func contentDirChecker(dir string) http.HealthChecker {
	return http.HealthCheckerFunc(func(context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	})
}
