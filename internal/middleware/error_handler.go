package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/pagination"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
)

// ErrorHandler returns a middleware that turns errors attached with c.Error
// into a JSON error response, unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, key := ClassifyError(err)
		requestID := GetRequestID(c)

		l := logger.Logger()
		event := l.Warn()
		if status >= http.StatusInternalServerError {
			event = l.Error()
		}
		event.
			Str("request_id", requestID).
			Err(err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		resp := dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID)
		if details := errorDetails(err); details != nil {
			resp.Details = details
		}
		c.AbortWithStatusJSON(status, resp)
	}
}

// ClassifyError maps a domain error to an HTTP status and a message key.
func ClassifyError(err error) (int, string) {
	var (
		pageErr    *pagination.ConfigurationError
		contentErr *repository.ValidationError
		requestErr *dto.ValidationError
	)

	switch {
	case errors.Is(err, repository.ErrUnknownCollection):
		return http.StatusNotFound, i18n.ErrKeyUnknownCollection
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, i18n.ErrKeyNotFound
	case errors.As(err, &pageErr):
		return http.StatusBadRequest, i18n.ErrKeyInvalidPageSize
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.As(err, &contentErr), errors.Is(err, repository.ErrDuplicateSlug):
		// broken content on disk is the operator's problem, not the client's
		return http.StatusInternalServerError, i18n.ErrKeyInvalidContent
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func errorDetails(err error) map[string]string {
	var requestErr *dto.ValidationError
	if errors.As(err, &requestErr) {
		return map[string]string{requestErr.Field: requestErr.Message}
	}
	var pageErr *pagination.ConfigurationError
	if errors.As(err, &pageErr) {
		return map[string]string{pageErr.Field: pageErr.Message}
	}
	return nil
}
