package admin

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateFeedbackRequest 审核评价请求
type UpdateFeedbackRequest struct {
	Status     *string `json:"status"`
	IsFeatured *bool   `json:"is_featured"`
}

// ListFeedback 评价列表
func (h *Handler) ListFeedback(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.FeedbackService.List(repository.FeedbackListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondMapped(c, err, handlershared.FeedbackErrorRules)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// UpdateFeedback 审核或精选评价
func (h *Handler) UpdateFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	feedback, err := h.FeedbackService.Update(id, service.UpdateFeedbackInput{
		Status:     req.Status,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		respondMapped(c, err, handlershared.FeedbackErrorRules)
		return
	}
	response.Success(c, feedback)
}

// DeleteFeedback 删除评价
func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.FeedbackService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.FeedbackErrorRules)
		return
	}
	response.Success(c, nil)
}
