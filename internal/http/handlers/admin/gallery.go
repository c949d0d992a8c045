package admin

import (
	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryRequest 图库图片请求
type GalleryRequest struct {
	URL       string `json:"url" binding:"required"`
	Category  string `json:"category"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

func (r GalleryRequest) toInput() service.GalleryInput {
	return service.GalleryInput{
		URL:       r.URL,
		Category:  r.Category,
		Caption:   r.Caption,
		SortOrder: r.SortOrder,
	}
}

// ListGallery 图库列表
func (h *Handler) ListGallery(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	images, total, err := h.GalleryService.List(repository.GalleryListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
	})
	if err != nil {
		respondMapped(c, err, handlershared.GalleryErrorRules)
		return
	}
	response.SuccessWithPage(c, images, response.BuildPagination(page, pageSize, total))
}

// CreateGalleryImage 新增图片
func (h *Handler) CreateGalleryImage(c *gin.Context) {
	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	image, err := h.GalleryService.Create(req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.GalleryErrorRules)
		return
	}
	response.Success(c, image)
}

// UpdateGalleryImage 更新图片
func (h *Handler) UpdateGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	image, err := h.GalleryService.Update(id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.GalleryErrorRules)
		return
	}
	response.Success(c, image)
}

// DeleteGalleryImage 删除图片
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.GalleryService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.GalleryErrorRules)
		return
	}
	response.Success(c, nil)
}
