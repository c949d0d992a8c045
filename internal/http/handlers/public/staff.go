package public

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListStaff 在职技师，可按服务筛选
func (h *Handler) ListStaff(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	staff, total, err := h.StaffService.ListPublic(repository.StaffListFilter{
		Page:      page,
		PageSize:  pageSize,
		ServiceID: strings.TrimSpace(c.Query("service_id")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, staff, response.BuildPagination(page, pageSize, total))
}

// ListGallery 图库
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
