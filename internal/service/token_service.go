package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
)

// DefaultIssuer is the iss claim of admin tokens.
const DefaultIssuer = "portfolio-service"

// TokenService issues and verifies admin access tokens.
type TokenService interface {
	// Generate signs a token for claims and returns it with its expiry.
	Generate(claims dto.Claims) (string, time.Time, error)
	// Validate verifies a token and returns its claims.
	Validate(tokenString string) (*dto.Claims, error)
	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
	// Now overrides time.Now.
	Now func() time.Time
}

// ClaimsWithJWT extends dto.Claims with the registered JWT claims.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenServiceImpl implements TokenService with HS256 tokens.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	now       func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       cfg.AccessTokenTTL,
		issuer:    cfg.Issuer,
		now:       cfg.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *TokenServiceImpl) TTL() time.Duration {
	return s.ttl
}

// Generate signs a token for claims.
func (s *TokenServiceImpl) Generate(claims dto.Claims) (string, time.Time, error) {
	if len(s.secretKey) == 0 {
		return "", time.Time{}, errors.New("jwt secret key is not configured")
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClaimsWithJWT{
		Claims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Username,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate verifies signature, algorithm, issuer and expiry.
func (s *TokenServiceImpl) Validate(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&ClaimsWithJWT{},
		func(*jwt.Token) (any, error) { return s.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}
