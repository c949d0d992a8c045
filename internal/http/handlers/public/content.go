package public

import (
	"time"

	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/models"

	"github.com/gin-gonic/gin"
)

const contentSettingsCacheTTL = 60 * time.Second

// GetContentSettings 站点内容设置
func (h *Handler) GetContentSettings(c *gin.Context) {
	var cached models.ContentSetting
	if hit, err := cache.GetJSON(c.Request.Context(), constants.CacheKeyContentSettings, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	setting, err := h.ContentService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if err := cache.SetJSON(c.Request.Context(), constants.CacheKeyContentSettings, setting, contentSettingsCacheTTL); err != nil {
		requestLog(c).Warnw("content_settings_cache_set_failed", "error", err)
	}
	response.Success(c, setting)
}
