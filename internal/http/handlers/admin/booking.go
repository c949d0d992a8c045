package admin

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/i18n"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateBookingRequest 后台更新预约请求
type UpdateBookingRequest struct {
	Status   *string `json:"status"`
	StaffID  *string `json:"staff_id"`
	DateTime *string `json:"date_time"`
	Notes    *string `json:"notes"`
}

// ListBookings 预约列表
func (h *Handler) ListBookings(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	dateFrom, err := handlershared.ParseTimeNullable(c.Query("date_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	dateTo, err := handlershared.ParseTimeNullable(c.Query("date_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	bookings, total, err := h.BookingService.List(repository.BookingListFilter{
		Page:      page,
		PageSize:  pageSize,
		Status:    strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		ServiceID: strings.TrimSpace(c.Query("service_id")),
		StaffID:   strings.TrimSpace(c.Query("staff_id")),
		Search:    strings.TrimSpace(c.Query("search")),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, bookings, response.BuildPagination(page, pageSize, total))
}

// GetBooking 预约详情
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := h.BookingService.Get(id)
	if err != nil {
		respondMapped(c, err, handlershared.BookingErrorRules)
		return
	}
	response.Success(c, booking)
}

// UpdateBooking 更新预约状态、技师或时间
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input := service.UpdateBookingInput{
		Status:  req.Status,
		StaffID: req.StaffID,
		Notes:   req.Notes,
		Locale:  i18n.ResolveLocale(c),
	}
	if req.DateTime != nil {
		parsed, err := handlershared.ParseTime(*req.DateTime)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.booking_time_invalid", err)
			return
		}
		input.DateTime = &parsed
	}
	booking, err := h.BookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondMapped(c, err, handlershared.BookingErrorRules)
		return
	}
	response.Success(c, booking)
}

// DeleteBooking 删除预约
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.BookingErrorRules)
		return
	}
	response.Success(c, nil)
}
