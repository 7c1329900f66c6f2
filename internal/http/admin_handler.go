package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/service"
)

// AdminHandler exposes cache diagnostics and invalidation.
type AdminHandler struct {
	content service.ContentService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(content service.ContentService) *AdminHandler {
	return &AdminHandler{content: content}
}

// MessageResponse carries a translated confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Cache cleared"`
	Key     string `json:"key,omitempty" example:"posts"`
} // @name MessageResponse

// CacheStats handles GET /api/admin/cache.
//
// @Summary      Cache statistics
// @Description  Size, keys and entry ages of every content cache.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=map[string]cache.Stats}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/admin/cache [get]
func (h *AdminHandler) CacheStats(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.content.CacheStats())
}

// ClearCache handles DELETE /api/admin/cache.
//
// @Summary      Clear caches
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=MessageResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/admin/cache [delete]
func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.content.ClearCache()
	NewResponseBuilder(c).SuccessOK(MessageResponse{
		Message: i18n.GetTranslator().Translate(i18n.SuccessKeyCacheCleared, i18n.GetLocale(c)),
	})
}

// EvictCache handles DELETE /api/admin/cache/:key.
//
// @Summary      Evict a cache entry
// @Description  Drops one key (a collection name, "resume" or "skills") so the next read reloads it. Evicting a key that is not cached is not an error.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Cache key"
// @Success      200 {object} dto.SuccessResponse{data=MessageResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/admin/cache/{key} [delete]
func (h *AdminHandler) EvictCache(c *gin.Context) {
	key := c.Param("key")
	h.content.Refresh(key)
	NewResponseBuilder(c).SuccessOK(MessageResponse{
		Message: i18n.GetTranslator().Translate(i18n.SuccessKeyCacheEvicted, i18n.GetLocale(c)),
		Key:     key,
	})
}
