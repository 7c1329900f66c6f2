package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() any {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() any {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BindQuery binds the query string into T and runs its Validate method if it has one.
// Binding failures come back as *dto.ValidationError.
func BindQuery[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, bindError(err)
	}
	return validated(&req)
}

// BindJSON binds the request body into T and runs its Validate method if it has one.
func BindJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, bindError(err)
	}
	return validated(&req)
}

func validated[T any](req *T) (*T, error) {
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// bindError reports the first failing field of a binding error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := "failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return &dto.ValidationError{Field: fe.Field(), Message: msg}
	}
	return &dto.ValidationError{Field: "request", Message: err.Error()}
}

// ResponseBuilder writes the standard response envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so the response can go back to the pool right after
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with the given status code and message key.
// err, when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		resp.Details = map[string]string{verr.Field: verr.Message}
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// Fail sends the error response matching a domain error.
func (b *ResponseBuilder) Fail(err error) {
	status, key := middleware.ClassifyError(err)
	b.Error(status, key, err)
}
