package admin

import (
	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentSettingRequest 站点内容设置请求
type ContentSettingRequest struct {
	Slogans      []string               `json:"slogans"`
	Address      string                 `json:"address"`
	FacebookURL  string                 `json:"facebook_url"`
	ZaloURL      string                 `json:"zalo_url"`
	InstagramURL string                 `json:"instagram_url"`
	Phone        string                 `json:"phone"`
	OpeningHours map[string]interface{} `json:"opening_hours"`
	HeroImages   []string               `json:"hero_images"`
	SEO          map[string]interface{} `json:"seo"`
}

// GetContentSettings 获取站点内容设置
func (h *Handler) GetContentSettings(c *gin.Context) {
	setting, err := h.ContentService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, setting)
}

// UpdateContentSettings 更新站点内容设置
func (h *Handler) UpdateContentSettings(c *gin.Context) {
	var req ContentSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	setting, err := h.ContentService.Update(service.ContentInput{
		Slogans:      req.Slogans,
		Address:      req.Address,
		FacebookURL:  req.FacebookURL,
		ZaloURL:      req.ZaloURL,
		InstagramURL: req.InstagramURL,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		HeroImages:   req.HeroImages,
		SEO:          req.SEO,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if err := cache.Del(c.Request.Context(), constants.CacheKeyContentSettings); err != nil {
		requestLog(c).Warnw("content_settings_cache_del_failed", "error", err)
	}
	response.Success(c, setting)
}
