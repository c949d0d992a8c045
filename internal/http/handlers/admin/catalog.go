package admin

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类请求
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// ServiceRequest 服务请求
type ServiceRequest struct {
	CategoryID   string       `json:"category_id" binding:"required"`
	Name         string       `json:"name" binding:"required"`
	Slug         string       `json:"slug" binding:"required"`
	Description  string       `json:"description"`
	BasePrice    models.Money `json:"base_price"`
	DurationMins int          `json:"duration_mins" binding:"required"`
	IsActive     *bool        `json:"is_active"`
}

func (r ServiceRequest) toInput() service.ServiceInput {
	return service.ServiceInput{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		BasePrice:    r.BasePrice,
		DurationMins: r.DurationMins,
		IsActive:     r.IsActive,
	}
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondMapped(c, err, handlershared.CategoryErrorRules)
		return
	}
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondMapped(c, err, handlershared.CategoryErrorRules)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.CategoryErrorRules)
		return
	}
	response.Success(c, nil)
}

// ListServices 后台服务列表（含下架）
func (h *Handler) ListServices(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	services, total, err := h.CatalogService.ListAdmin(repository.ServiceListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   strings.TrimSpace(c.Query("category_id")),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, services, response.BuildPagination(page, pageSize, total))
}

// GetService 后台服务详情
func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, err := h.CatalogService.GetAdmin(id)
	if err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, svc)
}

// CreateService 创建服务
func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	svc, err := h.CatalogService.Create(req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, svc)
}

// UpdateService 更新服务
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	svc, err := h.CatalogService.Update(id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, svc)
}

// DeleteService 删除服务
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.ServiceErrorRules)
		return
	}
	response.Success(c, nil)
}
