// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger from the log settings.
func InitializeLogger(cfg config.LogConfig) error {
	return logger.Init(logger.Config{
		Level:   cfg.Level,
		Format:  cfg.Format,
		Service: "portfolio-service",
	})
}
