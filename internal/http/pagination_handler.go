package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/pagination"
)

// PaginationResponse is a page window plus its navigation controls.
//
// @Description Pagination calculation
type PaginationResponse struct {
	pagination.Result
	PageRange []pagination.Entry `json:"page_range" swaggertype:"array,string"`
} // @name PaginationResponse

// Paginate handles GET /api/pagination.
//
// @Summary      Pagination calculator
// @Description  Computes the page window and the compressed page controls for lists the frontend paginates itself.
// @Tags         Pagination
// @Produce      json
// @Param        total query int true "Total items"
// @Param        page_size query int true "Items per page"
// @Param        page query int false "1-based page; clamped into range"
// @Param        max_visible query int false "Page controls to render (default 7)"
// @Success      200 {object} dto.SuccessResponse{data=PaginationResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid page size"
// @Router       /api/pagination [get]
func Paginate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BindQuery[dto.PaginationQuery](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	result, err := pagination.Compute(pagination.Request{
		TotalItems:   q.Total,
		ItemsPerPage: q.PageSize,
		CurrentPage:  q.Page,
	})
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(PaginationResponse{
		Result:    result,
		PageRange: pagination.PageRange(result.CurrentPage, result.TotalPages, q.MaxVisible),
	})
}
