package public

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories 服务分类
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// ListServices 上架服务列表（附带当前实际价格），未传分页参数时返回全部
func (h *Handler) ListServices(c *gin.Context) {
	page, pageSize, paged := handlershared.ParseOptionalPagination(c)
	services, total, err := h.CatalogService.ListPublic(c.Request.Context(), repository.ServiceListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: strings.TrimSpace(c.Query("category_id")),
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if !paged {
		response.Success(c, services)
		return
	}
	response.SuccessWithPage(c, services, response.BuildPagination(page, pageSize, total))
}

// GetService 服务详情
func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, err := h.CatalogService.GetPublic(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, svc)
}

// GetServicePrice 服务当前价格明细
func (h *Handler) GetServicePrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	price, err := h.CatalogService.GetPrice(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, price)
}

// ListActivePromotions 当前生效的活动
func (h *Handler) ListActivePromotions(c *gin.Context) {
	promotions, err := h.PromotionService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, promotions)
}
