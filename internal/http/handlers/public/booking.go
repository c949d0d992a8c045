package public

import (
	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/i18n"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBookingRequest 前台预约请求
type CreateBookingRequest struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	StaffID       *string `json:"staff_id"`
	DateTime      string  `json:"date_time" binding:"required"`
	Notes         string  `json:"notes" binding:"max=1000"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"omitempty,email"`
}

// CreateBooking 提交预约，价格以下单时刻的活动计算
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	dateTime, err := handlershared.ParseTime(req.DateTime)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.booking_time_invalid", err)
		return
	}
	booking, err := h.BookingService.Create(c.Request.Context(), service.CreateBookingInput{
		ServiceID:     req.ServiceID,
		StaffID:       req.StaffID,
		DateTime:      dateTime,
		Notes:         req.Notes,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Locale:        i18n.ResolveLocale(c),
	})
	if err != nil {
		respondMapped(c, err, handlershared.BookingErrorRules)
		return
	}
	response.Success(c, booking)
}
