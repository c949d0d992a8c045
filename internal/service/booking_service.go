package service

import (
	"context"
	"strings"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/metrics"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/queue"
	"github.com/salon-next/internal/repository"
)

// BookingService 预约业务
type BookingService struct {
	repo         repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	staffRepo    repository.StaffRepository
	pricing      *PricingService
	queueClient  *queue.Client
	reminderLead time.Duration
}

// NewBookingService 创建预约服务
func NewBookingService(
	repo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	pricingService *PricingService,
	queueClient *queue.Client,
	reminderLead time.Duration,
) *BookingService {
	return &BookingService{
		repo:         repo,
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		pricing:      pricingService,
		queueClient:  queueClient,
		reminderLead: reminderLead,
	}
}

// CreateBookingInput 前台预约输入
type CreateBookingInput struct {
	ServiceID     string
	StaffID       *string
	DateTime      time.Time
	Notes         string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Locale        string
}

// UpdateBookingInput 后台更新预约输入，nil 字段保持不变
type UpdateBookingInput struct {
	Status   *string
	StaffID  *string
	DateTime *time.Time
	Notes    *string
	Locale   string
}

// Create 创建预约，价格在此刻计算并固化
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return nil, ErrBookingInvalid
	}
	now := s.pricing.Now()
	if input.DateTime.IsZero() || !input.DateTime.After(now) {
		return nil, ErrBookingTimeInvalid
	}

	svc, err := s.serviceRepo.GetByID(strings.TrimSpace(input.ServiceID), false)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	staffID, err := s.resolveStaff(input.StaffID, svc.ID)
	if err != nil {
		return nil, err
	}

	price, err := s.pricing.Quote(ctx, svc)
	if err != nil {
		return nil, err
	}
	total := models.NewMoneyFromDecimal(price.Final.Decimal)
	original := models.NewMoneyFromDecimal(price.Original.Decimal)

	booking := &models.Booking{
		ServiceID:      svc.ID,
		StaffID:        staffID,
		DateTime:       input.DateTime,
		DurationMins:   svc.DurationMins,
		Status:         constants.BookingStatusPending,
		Notes:          strings.TrimSpace(input.Notes),
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  input.CustomerEmail,
		OriginalPrice:  original,
		DiscountAmount: models.Money{Decimal: original.Decimal.Sub(total.Decimal)},
		TotalPrice:     total,
	}
	if price.AppliedPromo != nil {
		promotionID := price.AppliedPromo.ID
		booking.PromotionID = &promotionID
	}

	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}
	metrics.ObserveBookingCreated(price.HasDiscount)
	logger.Infow("booking_created",
		"booking_id", booking.ID,
		"service_id", booking.ServiceID,
		"total_price", booking.TotalPrice.String(),
		"promotion_id", booking.PromotionID,
	)

	if err := s.queueClient.EnqueueBookingConfirmation(queue.BookingConfirmationPayload{
		BookingID: booking.ID,
		Locale:    input.Locale,
	}); err != nil {
		logger.Warnw("booking_enqueue_confirmation_failed", "booking_id", booking.ID, "error", err)
	}
	s.scheduleReminder(booking, input.Locale, now)

	booking.Service = svc
	return booking, nil
}

// List 后台预约列表
func (s *BookingService) List(filter repository.BookingListFilter) ([]models.Booking, int64, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	return s.repo.List(filter)
}

// Get 预约详情
func (s *BookingService) Get(id string) (*models.Booking, error) {
	booking, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// Update 后台更新预约，不重新计价
func (s *BookingService) Update(ctx context.Context, id string, input UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fromStatus := booking.Status
	if input.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*input.Status))
		if !isValidBookingStatus(status) {
			return nil, ErrBookingStatusInvalid
		}
		booking.Status = status
	}
	if input.StaffID != nil {
		staffID, err := s.resolveStaff(input.StaffID, booking.ServiceID)
		if err != nil {
			return nil, err
		}
		booking.StaffID = staffID
	}
	if input.DateTime != nil {
		if input.DateTime.IsZero() {
			return nil, ErrBookingTimeInvalid
		}
		booking.DateTime = *input.DateTime
	}
	if input.Notes != nil {
		booking.Notes = strings.TrimSpace(*input.Notes)
	}

	booking.Service = nil
	booking.Staff = nil
	if err := s.repo.Update(booking); err != nil {
		return nil, err
	}

	if booking.Status != fromStatus {
		logger.Infow("booking_status_changed",
			"booking_id", booking.ID,
			"from", fromStatus,
			"to", booking.Status,
		)
		if err := s.queueClient.EnqueueBookingStatusNotify(queue.BookingStatusNotifyPayload{
			BookingID:  booking.ID,
			FromStatus: fromStatus,
			ToStatus:   booking.Status,
			Locale:     input.Locale,
		}); err != nil {
			logger.Warnw("booking_enqueue_status_notify_failed", "booking_id", booking.ID, "error", err)
		}
	}
	return s.Get(booking.ID)
}

// Delete 删除预约
func (s *BookingService) Delete(id string) error {
	booking, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(booking.ID)
}

// resolveStaff 校验技师存在、在职且能提供该服务；空串表示不指定
func (s *BookingService) resolveStaff(raw *string, serviceID string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	staffID := strings.TrimSpace(*raw)
	if staffID == "" {
		return nil, nil
	}
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, ErrStaffNotFound
	}
	if len(staff.Services) > 0 {
		ok, err := s.staffRepo.HasService(staffID, serviceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrStaffServiceMismatch
		}
	}
	return &staffID, nil
}

func (s *BookingService) scheduleReminder(booking *models.Booking, locale string, now time.Time) {
	if s.reminderLead <= 0 {
		return
	}
	delay := booking.DateTime.Add(-s.reminderLead).Sub(now)
	if delay <= 0 {
		return
	}
	if err := s.queueClient.EnqueueBookingReminder(queue.BookingReminderPayload{
		BookingID: booking.ID,
		Locale:    locale,
	}, delay); err != nil {
		logger.Warnw("booking_enqueue_reminder_failed", "booking_id", booking.ID, "error", err)
	}
}

func isValidBookingStatus(status string) bool {
	switch status {
	case constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCancelled,
		constants.BookingStatusDone:
		return true
	default:
		return false
	}
}
