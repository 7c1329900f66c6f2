package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// ContentHandler serves collections, tags, the resume and skills.
type ContentHandler struct {
	content service.ContentService
	now     func() time.Time
}

// NewContentHandler creates a content handler.
func NewContentHandler(content service.ContentService) *ContentHandler {
	return &ContentHandler{content: content, now: time.Now}
}

// List handles GET /api/content/:collection.
//
// @Summary      List a collection
// @Description  Returns one page of posts, notes or projects, newest first, with the pagination window and the compressed page controls.
// @Tags         Content
// @Produce      json
// @Param        collection path string true "Collection" Enums(posts, notes, projects)
// @Param        page query int false "1-based page; out of range values are clamped"
// @Param        page_size query int false "Items per page (1-100)"
// @Param        tag query string false "Only items with this tag (case-insensitive)"
// @Param        drafts query bool false "Include drafts (admin token required)"
// @Success      200 {object} dto.SuccessResponse{data=service.ListResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      404 {object} dto.ErrorResponse "Unknown collection"
// @Failure      503 {object} dto.ErrorResponse "Content source unavailable"
// @Router       /api/content/{collection} [get]
func (h *ContentHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BindQuery[dto.ContentListQuery](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	_, isAdmin := middleware.GetClaims(c)
	result, err := h.content.List(c.Request.Context(), service.ListQuery{
		Collection:    c.Param("collection"),
		Page:          q.Page,
		PageSize:      q.PageSize,
		Tag:           q.Tag,
		IncludeDrafts: q.Drafts && isAdmin,
	})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// Get handles GET /api/content/:collection/:slug.
//
// @Summary      Get an item
// @Tags         Content
// @Produce      json
// @Param        collection path string true "Collection" Enums(posts, notes, projects)
// @Param        slug path string true "Item slug"
// @Success      200 {object} dto.SuccessResponse{data=model.ContentItem}
// @Failure      404 {object} dto.ErrorResponse "Unknown collection or item"
// @Router       /api/content/{collection}/{slug} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item, err := h.content.Get(c.Request.Context(), c.Param("collection"), c.Param("slug"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(item)
}

// Tags handles GET /api/tags.
//
// @Summary      Tag counts
// @Description  Counts tags of published items, most used first. Without a collection every collection is counted.
// @Tags         Content
// @Produce      json
// @Param        collection query string false "Restrict to one collection"
// @Success      200 {object} dto.SuccessResponse{data=[]model.TagCount}
// @Failure      404 {object} dto.ErrorResponse "Unknown collection"
// @Router       /api/tags [get]
func (h *ContentHandler) Tags(c *gin.Context) {
	builder := NewResponseBuilder(c)

	tags, err := h.content.Tags(c.Request.Context(), c.Query("collection"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(tags)
}

// Resume handles GET /api/resume.
//
// @Summary      Resume
// @Description  Returns the resume with the duration of every position and the total experience computed at request time.
// @Tags         Resume
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.ResumeView}
// @Failure      404 {object} dto.ErrorResponse "No resume published"
// @Router       /api/resume [get]
func (h *ContentHandler) Resume(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resume, err := h.content.Resume(c.Request.Context(), h.now())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(resume)
}

// Skills handles GET /api/skills.
//
// @Summary      Skills
// @Tags         Resume
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.SkillGroup}
// @Router       /api/skills [get]
func (h *ContentHandler) Skills(c *gin.Context) {
	builder := NewResponseBuilder(c)

	skills, err := h.content.Skills(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(skills)
}
