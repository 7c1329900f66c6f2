package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/service"
)

// SearchHandler serves the search index, search results and the RSS feed.
type SearchHandler struct {
	search service.SearchService
	feed   service.FeedService
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(search service.SearchService, feed service.FeedService) *SearchHandler {
	return &SearchHandler{search: search, feed: feed}
}

// Search handles GET /api/search.
//
// @Summary      Search content
// @Description  Returns published items containing every query term. Accents and case are ignored.
// @Tags         Search
// @Produce      json
// @Param        q query string true "Query"
// @Param        limit query int false "Maximum results (1-50)"
// @Success      200 {object} dto.SuccessResponse{data=[]service.SearchDocument}
// @Failure      400 {object} dto.ErrorResponse "Missing query"
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BindQuery[dto.SearchQuery](c)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) && verr.Field == "Query" {
			builder.Error(http.StatusBadRequest, i18n.ErrKeySearchQueryRequired, err)
			return
		}
		builder.Fail(err)
		return
	}

	results, err := h.search.Search(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(results)
}

// Index handles GET /api/search/index.
//
// @Summary      Search index
// @Description  The full index for client-side search, one document per published item.
// @Tags         Search
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]service.SearchDocument}
// @Router       /api/search/index [get]
func (h *SearchHandler) Index(c *gin.Context) {
	builder := NewResponseBuilder(c)

	docs, err := h.search.Index(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(docs)
}

// RSS handles GET /rss.xml.
//
// @Summary      RSS feed
// @Tags         Search
// @Produce      xml
// @Success      200 {string} string "RSS 2.0 document"
// @Router       /rss.xml [get]
func (h *SearchHandler) RSS(c *gin.Context) {
	body, err := h.feed.RSS(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
}
