// Package config provides configuration management for the portfolio service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Content  ContentConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string `validate:"required,numeric"`
	RateLimit      int    `validate:"min=0"`
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig holds the content cache configuration.
type CacheConfig struct {
	TTL time.Duration
	// SingleFlight coalesces concurrent loads of the same key.
	SingleFlight bool
}

// ContentConfig describes where content lives and how the site presents it.
type ContentConfig struct {
	Dir             string `validate:"required"`
	PageSize        int    `validate:"min=1,max=100"`
	MaxVisiblePages int    `validate:"min=5"`
	SiteTitle       string
	SiteURL         string `validate:"omitempty,url"`
	SiteDescription string
	FeedLimit       int `validate:"min=0"`
	// Warm preloads every cache at startup.
	Warm bool
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled           bool
	APIKeys           []string
	AdminUsername     string `validate:"required_if=Enabled true"`
	AdminPasswordHash string `validate:"required_if=Enabled true"`
	JWTSecretKey      string `validate:"required_if=Enabled true"`
	AccessTokenTTL    time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string `validate:"required_if=Enabled true"`
	DatabaseName string `validate:"required_if=Enabled true"`
	Enabled      bool
	// Seed copies the file content into MongoDB at startup.
	Seed bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int `validate:"min=1"`
	CircuitBreakerSuccessThreshold int `validate:"min=1"`
	CircuitBreakerTimeout          time.Duration
}

var validate = validator.New()

// Load reads an optional .env file and creates a Config from environment variables.
// Variables already set in the environment win over the file.
func Load() Config {
	_ = LoadDotEnv(".env")
	return FromEnv()
}

// LoadDotEnv loads variables from the given files. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv creates a Config from environment variables only.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: logFormat(),
		},
		Cache: CacheConfig{
			TTL:          getEnvDuration("CACHE_TTL", 5*time.Minute),
			SingleFlight: getEnvBool("CACHE_SINGLE_FLIGHT", false),
		},
		Content: ContentConfig{
			Dir:             getEnv("CONTENT_DIR", "content"),
			PageSize:        getEnvInt("PAGE_SIZE", 10),
			MaxVisiblePages: getEnvInt("MAX_VISIBLE_PAGES", 7),
			SiteTitle:       getEnv("SITE_TITLE", "Portfolio"),
			SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
			SiteDescription: getEnv("SITE_DESCRIPTION", ""),
			FeedLimit:       getEnvInt("FEED_LIMIT", 20),
			Warm:            getEnvBool("CACHE_WARM", true),
		},
		Auth: AuthConfig{
			Enabled:           getEnvBool("AUTH_ENABLED", false),
			APIKeys:           parseList(os.Getenv("API_KEYS")),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecretKey:      getEnv("JWT_SECRET_KEY", ""),
			AccessTokenTTL:    getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "portfolio"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			Seed:                           getEnvBool("MONGODB_SEED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports the first invalid setting of every section.
func (c Config) Validate() error {
	var errs []error
	for _, section := range []any{c.Server, c.Content, c.Auth, c.Database} {
		if err := validate.Struct(section); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func logFormat() string {
	if getEnvBool("LOG_PRETTY", false) {
		return "console"
	}
	return getEnv("LOG_FORMAT", "json")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseList(s)...)
}
