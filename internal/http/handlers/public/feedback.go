package public

import (
	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitFeedbackRequest 提交评价请求
type SubmitFeedbackRequest struct {
	Rating       int      `json:"rating" binding:"required"`
	Title        string   `json:"title"`
	Comment      string   `json:"comment" binding:"required"`
	ImageURLs    []string `json:"image_urls"`
	CustomerName string   `json:"customer_name"`
}

// ContactRequest 联系留言请求
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// ListFeedback 已审核通过的评价
func (h *Handler) ListFeedback(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	items, total, err := h.FeedbackService.ListPublic(repository.FeedbackListFilter{
		Page:         page,
		PageSize:     pageSize,
		OnlyFeatured: c.Query("featured") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// SubmitFeedback 提交评价，审核后展示
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	feedback, err := h.FeedbackService.Submit(service.CreateFeedbackInput{
		Rating:       req.Rating,
		Title:        req.Title,
		Comment:      req.Comment,
		ImageURLs:    req.ImageURLs,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		respondMapped(c, err, handlershared.FeedbackErrorRules)
		return
	}
	response.Success(c, feedback)
}

// SubmitContact 提交联系留言
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.contact_invalid", err)
		return
	}
	message, err := h.ContactService.Submit(service.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		respondMapped(c, err, handlershared.ContactErrorRules)
		return
	}
	response.Success(c, gin.H{"id": message.ID})
}
