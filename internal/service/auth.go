package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// dummyHash is compared against when the username does not match so both
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-service"), bcrypt.MinCost)

// AuthService authenticates the site administrator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AdminCredentials identifies the single administrator account.
type AdminCredentials struct {
	Username string
	// PasswordHash is a bcrypt hash, see scripts/generate_keys.go.
	PasswordHash string
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	admin        AdminCredentials
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(admin AdminCredentials, tokenService TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{admin: admin, tokenService: tokenService}
}

// Login checks the admin credentials and issues an access token.
func (s *AuthServiceImpl) Login(_ context.Context, username, password string) (*dto.TokenResponse, error) {
	hash := []byte(s.admin.PasswordHash)
	userOK := s.admin.Username != "" &&
		subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	if !userOK || len(hash) == 0 {
		hash = dummyHash
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !userOK || s.admin.PasswordHash == "" {
		log.Warn().Str("username", username).Msg("Admin login failed")
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokenService.Generate(dto.Claims{Username: s.admin.Username, Role: dto.RoleAdmin})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info().Str("username", username).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenService.TTL().Seconds()),
	}, nil
}

// ValidateToken verifies an access token and requires the admin role.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	claims, err := s.tokenService.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != dto.RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
