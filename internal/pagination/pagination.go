// Package pagination computes page windows and navigation controls for content listings.
package pagination

import (
	"errors"
	"fmt"
)

// MaxPages bounds TotalPages so Pages stays a reasonable allocation.
const MaxPages = 1_000_000

var (
	// ErrInvalidPageSize is returned when the page size is not a positive integer.
	ErrInvalidPageSize = &ConfigurationError{Field: "items_per_page", Message: "must be a positive integer"}
	// ErrTooManyPages is returned when a listing would span more than MaxPages pages.
	ErrTooManyPages = &ConfigurationError{Field: "total_items", Message: fmt.Sprintf("must fit in %d pages", MaxPages)}
)

// ConfigurationError reports a pagination input that cannot produce a valid result.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error returns the error message for ConfigurationError.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pagination: %s %s", e.Field, e.Message)
}

// IsConfigurationError reports whether err is a pagination configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// Request describes the listing to paginate.
// CurrentPage is unvalidated input; zero means the first page.
type Request struct {
	TotalItems   int
	ItemsPerPage int
	CurrentPage  int
}

// Result is the derived page window for a Request.
type Result struct {
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	StartIndex  int   `json:"start_index"`
	EndIndex    int   `json:"end_index"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
	Pages       []int `json:"pages"`
}

// Compute returns the page window for req. Out-of-range pages are clamped,
// never rejected. With no items the result is page 1 of 0.
func Compute(req Request) (Result, error) {
	if req.ItemsPerPage <= 0 {
		return Result{}, ErrInvalidPageSize
	}
	if req.TotalItems < 0 {
		return Result{}, &ConfigurationError{Field: "total_items", Message: "must not be negative"}
	}

	totalPages := req.TotalItems / req.ItemsPerPage
	if req.TotalItems%req.ItemsPerPage != 0 {
		totalPages++
	}
	if totalPages > MaxPages {
		return Result{}, ErrTooManyPages
	}

	current := req.CurrentPage
	if current > totalPages {
		current = totalPages
	}
	// lower bound applied last so it wins when totalPages is 0
	if current < 1 {
		current = 1
	}

	start := (current - 1) * req.ItemsPerPage
	// start never exceeds TotalItems, so the subtraction cannot overflow
	end := start + min(req.ItemsPerPage, req.TotalItems-start)

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Result{
		TotalPages:  totalPages,
		CurrentPage: current,
		StartIndex:  start,
		EndIndex:    end,
		HasNextPage: current < totalPages,
		HasPrevPage: current > 1,
		Pages:       pages,
	}, nil
}

// Slice returns the items of the current page described by r.
func Slice[T any](items []T, r Result) []T {
	if r.StartIndex >= len(items) {
		return []T{}
	}
	end := min(r.EndIndex, len(items))
	return items[r.StartIndex:end]
}
