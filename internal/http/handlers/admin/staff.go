package admin

import (
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffRequest 技师资料请求
type StaffRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Position        string   `json:"position"`
	Bio             string   `json:"bio"`
	ProfileImageURL string   `json:"profile_image_url"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	IsActive        *bool    `json:"is_active"`
}

func (r StaffRequest) toInput() service.StaffInput {
	return service.StaffInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Position:        r.Position,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
		Skills:          r.Skills,
		ExperienceYears: r.ExperienceYears,
		IsActive:        r.IsActive,
	}
}

// AvailabilitySlotRequest 排班时段
type AvailabilitySlotRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
	IsActive  *bool  `json:"is_active"`
}

// ReplaceAvailabilityRequest 覆盖排班请求
type ReplaceAvailabilityRequest struct {
	Slots []AvailabilitySlotRequest `json:"slots" binding:"dive"`
}

// ReplaceStaffServicesRequest 覆盖技师可做服务请求
type ReplaceStaffServicesRequest struct {
	ServiceIDs []string `json:"service_ids"`
}

// ListStaff 技师列表
func (h *Handler) ListStaff(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	staff, total, err := h.StaffService.List(repository.StaffListFilter{
		Page:      page,
		PageSize:  pageSize,
		Search:    strings.TrimSpace(c.Query("search")),
		ServiceID: strings.TrimSpace(c.Query("service_id")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, staff, response.BuildPagination(page, pageSize, total))
}

// GetStaff 技师详情
func (h *Handler) GetStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	staff, err := h.StaffService.Get(id)
	if err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, staff)
}

// CreateStaff 创建技师
func (h *Handler) CreateStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	staff, err := h.StaffService.Create(req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, staff)
}

// UpdateStaff 更新技师
func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	staff, err := h.StaffService.Update(id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, staff)
}

// DeleteStaff 删除技师
func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.StaffService.Delete(id); err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, nil)
}

// ReplaceStaffAvailability 覆盖技师排班
func (h *Handler) ReplaceStaffAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.availability_invalid", err)
		return
	}
	inputs := make([]service.AvailabilityInput, 0, len(req.Slots))
	for _, slot := range req.Slots {
		inputs = append(inputs, service.AvailabilityInput{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsActive:  slot.IsActive,
		})
	}
	staff, err := h.StaffService.ReplaceAvailability(id, inputs)
	if err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, staff)
}

// ReplaceStaffServices 覆盖技师可做服务
func (h *Handler) ReplaceStaffServices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReplaceStaffServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	staff, err := h.StaffService.ReplaceServices(id, req.ServiceIDs)
	if err != nil {
		respondMapped(c, err, handlershared.StaffErrorRules)
		return
	}
	response.Success(c, staff)
}
