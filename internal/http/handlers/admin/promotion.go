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

// PromotionRequest 创建/更新活动请求
type PromotionRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	DiscountType string       `json:"discount_type" binding:"required"`
	Value        models.Money `json:"value"`
	ScopeType    string       `json:"scope_type" binding:"required"`
	ScopeID      *string      `json:"scope_id"`
	StartAt      string       `json:"start_at" binding:"required"`
	EndAt        string       `json:"end_at" binding:"required"`
	IsActive     *bool        `json:"is_active"`
}

func (r PromotionRequest) toInput() (service.PromotionInput, error) {
	startAt, err := handlershared.ParseTime(r.StartAt)
	if err != nil {
		return service.PromotionInput{}, err
	}
	endAt, err := handlershared.ParseTime(r.EndAt)
	if err != nil {
		return service.PromotionInput{}, err
	}
	return service.PromotionInput{
		Title:        r.Title,
		Description:  r.Description,
		DiscountType: r.DiscountType,
		Value:        r.Value,
		ScopeType:    r.ScopeType,
		ScopeID:      r.ScopeID,
		StartAt:      startAt,
		EndAt:        endAt,
		IsActive:     r.IsActive,
	}, nil
}

// ListPromotions 活动列表
func (h *Handler) ListPromotions(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, err := handlershared.ParseBoolNullable(c.Query("is_active"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	promotions, total, err := h.PromotionAdminService.List(repository.PromotionListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		ScopeType:    strings.TrimSpace(c.Query("scope_type")),
		DiscountType: strings.TrimSpace(c.Query("discount_type")),
		IsActive:     isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, promotions, response.BuildPagination(page, pageSize, total))
}

// GetPromotion 活动详情
func (h *Handler) GetPromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	promotion, err := h.PromotionAdminService.Get(id)
	if err != nil {
		respondMapped(c, err, handlershared.PromotionErrorRules)
		return
	}
	response.Success(c, promotion)
}

// CreatePromotion 创建活动
func (h *Handler) CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.promotion_window_invalid", err)
		return
	}
	promotion, err := h.PromotionAdminService.Create(c.Request.Context(), input)
	if err != nil {
		respondMapped(c, err, handlershared.PromotionErrorRules)
		return
	}
	requestLog(c).Infow("promotion_created", "promotion_id", promotion.ID, "scope_type", promotion.ScopeType)
	response.Success(c, promotion)
}

// UpdatePromotion 更新活动
func (h *Handler) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.promotion_window_invalid", err)
		return
	}
	promotion, err := h.PromotionAdminService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondMapped(c, err, handlershared.PromotionErrorRules)
		return
	}
	response.Success(c, promotion)
}

// DeletePromotion 删除活动
func (h *Handler) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.PromotionAdminService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.PromotionErrorRules)
		return
	}
	response.Success(c, nil)
}

// PreviewPromotion 试算活动对各服务的影响
func (h *Handler) PreviewPromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.PromotionAdminService.Preview(id)
	if err != nil {
		respondMapped(c, err, handlershared.PromotionErrorRules)
		return
	}
	response.Success(c, items)
}
