// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// MaxPageSize bounds page_size on listing endpoints.
const MaxPageSize = 100

// ContentListQuery holds the query string of a collection listing.
type ContentListQuery struct {
	// Page is 1-based; 0 or absent means the first page.
	Page int `form:"page" binding:"omitempty,min=0" example:"2"`
	// PageSize overrides the configured page size.
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
	// Tag restricts the listing to items carrying the tag.
	Tag string `form:"tag" binding:"omitempty,max=40" example:"go"`
	// Drafts includes draft items; honoured for authenticated admins only.
	Drafts bool `form:"drafts"`
}

// Validate performs custom validation on the query.
func (q *ContentListQuery) Validate() error {
	if q.Page < 0 {
		return &ValidationError{Field: "page", Message: "must not be negative"}
	}
	if q.PageSize < 0 || q.PageSize > MaxPageSize {
		return &ValidationError{Field: "page_size", Message: "must be between 1 and 100"}
	}
	return nil
}

// PaginationQuery holds the query string of the pagination calculator endpoint.
type PaginationQuery struct {
	Total      int `form:"total" binding:"min=0,max=1000000" example:"95"`
	PageSize   int `form:"page_size" example:"10"`
	Page       int `form:"page" example:"3"`
	MaxVisible int `form:"max_visible" example:"7"`
}

// SearchQuery holds the query string of the search endpoint.
type SearchQuery struct {
	Query string `form:"q" binding:"required,max=200" example:"ttl cache"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50" example:"10"`
}
