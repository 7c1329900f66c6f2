package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// AuthHandler provides HTTP handlers for admin authentication.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Admin login
// @Description  Exchanges the admin credentials for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.LoginRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		l := logger.Logger()
		l.Warn().
			Str("request_id", middleware.GetRequestID(c)).
			Str("username", req.Username).
			Str("ip", c.ClientIP()).
			Msg("Failed admin login")
		builder.Fail(err)
		return
	}

	builder.SuccessOK(token)
}
