// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes the global logger.
type Config struct {
	Level   string `validate:"required,oneof=trace debug info warn error"`
	Format  string `validate:"required,oneof=json console"`
	Service string `validate:"omitempty,max=64"`
}

// DefaultConfig logs JSON at info level.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatJSON, Service: "portfolio-service"}
}

var validate = validator.New()

// Init configures the global logger to write to stderr.
func Init(cfg Config) error {
	return InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter configures the global logger to write to w.
// An invalid config leaves the current logger untouched.
func InitWithWriter(cfg Config, w io.Writer) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid logger config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	log.Logger = ctx.Logger()
	return nil
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns a logger with context fields.
func WithContext(fields map[string]any) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}
