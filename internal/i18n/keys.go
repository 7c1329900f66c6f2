// Package i18n provides internationalization support for the portfolio service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong admin username or password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyUnknownCollection indicates a collection the site does not have.
	ErrKeyUnknownCollection = "error.unknown_collection"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidPageSize indicates a non-positive page size.
	ErrKeyInvalidPageSize = "error.validation.page_size"
	// ErrKeyInvalidPage indicates a malformed page query.
	ErrKeyInvalidPage = "error.validation.page"
	// ErrKeySearchQueryRequired indicates a missing search query.
	ErrKeySearchQueryRequired = "error.validation.search_query"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyUnavailable indicates the content source is down.
	ErrKeyUnavailable = "error.unavailable"
	// ErrKeyInvalidContent indicates content files that failed validation.
	ErrKeyInvalidContent = "error.invalid_content"
)

// Success message translation keys.
const (
	// SuccessKeyCacheCleared indicates every cache was emptied.
	SuccessKeyCacheCleared = "success.cache_cleared"
	// SuccessKeyCacheEvicted indicates one cache entry was evicted.
	SuccessKeyCacheEvicted = "success.cache_evicted"
)
