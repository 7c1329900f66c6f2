package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "REQUEST_TIMEOUT", "CORS_ORIGINS",
	"SWAGGER_USER", "SWAGGER_PASS", "LOG_LEVEL", "LOG_FORMAT", "LOG_PRETTY",
	"CACHE_TTL", "CACHE_SINGLE_FLIGHT", "CACHE_WARM", "CONTENT_DIR", "PAGE_SIZE",
	"MAX_VISIBLE_PAGES", "SITE_TITLE", "SITE_URL", "SITE_DESCRIPTION", "FEED_LIMIT",
	"AUTH_ENABLED", "API_KEYS", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH",
	"JWT_SECRET_KEY", "JWT_ACCESS_TOKEN_TTL", "MONGODB_URI", "MONGODB_DATABASE",
	"MONGODB_ENABLED", "MONGODB_SEED", "CIRCUIT_BREAKER_FAILURE_THRESHOLD",
	"CIRCUIT_BREAKER_SUCCESS_THRESHOLD", "CIRCUIT_BREAKER_TIMEOUT",
}

// clearEnv blanks every variable the config reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)

		cfg := FromEnv()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.False(t, cfg.Cache.SingleFlight)
		assert.Equal(t, "content", cfg.Content.Dir)
		assert.Equal(t, 10, cfg.Content.PageSize)
		assert.Equal(t, 7, cfg.Content.MaxVisiblePages)
		assert.True(t, cfg.Content.Warm)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.False(t, cfg.Auth.Enabled)
		assert.Empty(t, cfg.Auth.APIKeys)
		assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "portfolio", cfg.Database.DatabaseName)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CACHE_TTL", "10m")
		t.Setenv("CACHE_SINGLE_FLIGHT", "true")
		t.Setenv("PAGE_SIZE", "5")
		t.Setenv("SITE_URL", "https://example.com")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", "key1, key2,,")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("MONGODB_ENABLED", "true")
		t.Setenv("MONGODB_SEED", "true")

		cfg := FromEnv()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.True(t, cfg.Cache.SingleFlight)
		assert.Equal(t, 5, cfg.Content.PageSize)
		assert.Equal(t, "https://example.com", cfg.Content.SiteURL)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.True(t, cfg.Database.Enabled)
		assert.True(t, cfg.Database.Seed)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")

		cfg := FromEnv()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("log pretty selects console format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_PRETTY", "true")
		t.Setenv("LOG_FORMAT", "json")

		assert.Equal(t, "console", FromEnv().Log.Format)
	})

	t.Run("cors origins keep local defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CORS_ORIGINS", " https://example.com ,")

		cfg := FromEnv()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://example.com",
		}, cfg.Server.CORSOrigins)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "auth enabled without secret",
			mutate:  func(c *Config) { c.Auth.Enabled = true; c.Auth.AdminPasswordHash = "hash" },
			wantErr: "JWTSecretKey",
		},
		{
			name:    "auth enabled without password hash",
			mutate:  func(c *Config) { c.Auth.Enabled = true; c.Auth.JWTSecretKey = "secret" },
			wantErr: "AdminPasswordHash",
		},
		{
			name:    "page size out of range",
			mutate:  func(c *Config) { c.Content.PageSize = 0 },
			wantErr: "PageSize",
		},
		{
			name:    "non numeric port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: "Port",
		},
		{
			name:    "bad site url",
			mutate:  func(c *Config) { c.Content.SiteURL = "not a url" },
			wantErr: "SiteURL",
		},
		{
			name:    "mongodb enabled without database name",
			mutate:  func(c *Config) { c.Database.Enabled = true; c.Database.DatabaseName = "" },
			wantErr: "DatabaseName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := FromEnv()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAGE_SIZE=3\nSITE_TITLE=From file\n"), 0o600))
	t.Setenv("SITE_TITLE", "From env")
	// godotenv only fills variables that are absent, not empty
	require.NoError(t, os.Unsetenv("PAGE_SIZE"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	cfg := FromEnv()

	assert.Equal(t, 3, cfg.Content.PageSize)
	assert.Equal(t, "From env", cfg.Content.SiteTitle)
}
