package app

import (
	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/rs/zerolog/log"
)

// InitializeAuth builds the admin authentication service.
// It returns nil when auth is disabled or not fully configured, in which case
// admin routes fall back to API keys.
func InitializeAuth(cfg config.AuthConfig) service.AuthService {
	if !cfg.Enabled {
		return nil
	}
	if cfg.AdminPasswordHash == "" || cfg.JWTSecretKey == "" {
		log.Warn().Msg("AUTH_ENABLED is set but ADMIN_PASSWORD_HASH or JWT_SECRET_KEY is missing - JWT login disabled")
		return nil
	}

	tokens := service.NewTokenService(service.TokenConfig{
		SecretKey:      cfg.JWTSecretKey,
		AccessTokenTTL: cfg.AccessTokenTTL,
		Issuer:         "portfolio-service",
	})
	log.Info().Str("username", cfg.AdminUsername).Msg("Admin authentication enabled")
	return service.NewAuthService(service.AdminCredentials{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokens)
}
