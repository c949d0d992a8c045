package admin

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateContactRequest 标记留言处理状态
type UpdateContactRequest struct {
	Handled bool `json:"handled"`
}

// ListContactMessages 留言列表
func (h *Handler) ListContactMessages(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	handled, err := handlershared.ParseBoolNullable(c.Query("handled"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	messages, total, err := h.ContactService.List(repository.ContactListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
		Handled:  handled,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, messages, response.BuildPagination(page, pageSize, total))
}

// UpdateContactMessage 标记留言已处理/未处理
func (h *Handler) UpdateContactMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	message, err := h.ContactService.SetHandled(id, req.Handled)
	if err != nil {
		respondMapped(c, err, handlershared.ContactErrorRules)
		return
	}
	response.Success(c, message)
}

// DeleteContactMessage 删除留言
func (h *Handler) DeleteContactMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ContactService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.ContactErrorRules)
		return
	}
	response.Success(c, nil)
}
