package worker

import (
	"context"
	"strings"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/i18n"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/metrics"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/provider"
	"github.com/salon-next/internal/queue"

	"github.com/hibiken/asynq"
)

const notifyTimeLayout = "15:04 02/01/2006"

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
	Notifier Notifier
	now      func() time.Time
}

// NewConsumer 创建消费者，notifier 为空时写日志
func NewConsumer(c *provider.Container, notifier Notifier) *Consumer {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Consumer{
		Container: c,
		Notifier:  notifier,
		now:       time.Now,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskBookingConfirmation, observed(queue.TaskBookingConfirmation, c.handleBookingConfirmation))
	mux.HandleFunc(queue.TaskBookingStatusNotify, observed(queue.TaskBookingStatusNotify, c.handleBookingStatusNotify))
	mux.HandleFunc(queue.TaskBookingReminder, observed(queue.TaskBookingReminder, c.handleBookingReminder))
}

func observed(taskType string, fn func(context.Context, *asynq.Task) error) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		err := fn(ctx, task)
		metrics.ObserveWorkerTask(taskType, err)
		return err
	}
}

func (c *Consumer) handleBookingConfirmation(ctx context.Context, task *asynq.Task) error {
	var payload queue.BookingConfirmationPayload
	if err := queue.ParsePayload(task, &payload); err != nil {
		logger.Warnw("worker_booking_confirmation_unmarshal_failed", "error", err)
		return err
	}
	booking, err := c.loadBooking(payload.BookingID)
	if err != nil || booking == nil {
		return err
	}
	locale := i18n.NormalizeLocale(payload.Locale)
	return c.send(ctx, booking, Message{
		Subject: i18n.T(locale, "notify.booking_confirmation.subject"),
		Body: i18n.Sprintf(locale, "notify.booking_confirmation.body",
			booking.CustomerName,
			serviceName(booking),
			booking.DateTime.Format(notifyTimeLayout),
			booking.TotalPrice.String(),
		),
	})
}

func (c *Consumer) handleBookingStatusNotify(ctx context.Context, task *asynq.Task) error {
	var payload queue.BookingStatusNotifyPayload
	if err := queue.ParsePayload(task, &payload); err != nil {
		logger.Warnw("worker_booking_status_unmarshal_failed", "error", err)
		return err
	}
	booking, err := c.loadBooking(payload.BookingID)
	if err != nil || booking == nil {
		return err
	}
	// 任务积压期间状态可能再次变化，只通知最新状态
	if booking.Status != payload.ToStatus {
		logger.Debugw("worker_booking_status_skip_stale",
			"booking_id", booking.ID,
			"payload_status", payload.ToStatus,
			"current_status", booking.Status,
		)
		return nil
	}
	locale := i18n.NormalizeLocale(payload.Locale)
	return c.send(ctx, booking, Message{
		Subject: i18n.T(locale, "notify.booking_status.subject"),
		Body: i18n.Sprintf(locale, "notify.booking_status.body",
			booking.CustomerName,
			serviceName(booking),
			booking.Status,
		),
	})
}

func (c *Consumer) handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	var payload queue.BookingReminderPayload
	if err := queue.ParsePayload(task, &payload); err != nil {
		logger.Warnw("worker_booking_reminder_unmarshal_failed", "error", err)
		return err
	}
	booking, err := c.loadBooking(payload.BookingID)
	if err != nil || booking == nil {
		return err
	}
	if booking.Status == constants.BookingStatusCancelled || booking.Status == constants.BookingStatusDone {
		logger.Debugw("worker_booking_reminder_skip_closed", "booking_id", booking.ID, "status", booking.Status)
		return nil
	}
	if !booking.DateTime.After(c.now()) {
		logger.Debugw("worker_booking_reminder_skip_past", "booking_id", booking.ID)
		return nil
	}
	locale := i18n.NormalizeLocale(payload.Locale)
	return c.send(ctx, booking, Message{
		Subject: i18n.T(locale, "notify.booking_confirmation.subject"),
		Body: i18n.Sprintf(locale, "notify.booking_reminder.body",
			booking.CustomerName,
			serviceName(booking),
			booking.DateTime.Format(notifyTimeLayout),
		),
	})
}

func (c *Consumer) loadBooking(id string) (*models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		logger.Debugw("worker_booking_skip_invalid_payload")
		return nil, nil
	}
	booking, err := c.BookingRepo.GetByID(id)
	if err != nil {
		logger.Warnw("worker_booking_fetch_failed", "booking_id", id, "error", err)
		return nil, err
	}
	if booking == nil {
		logger.Debugw("worker_booking_skip_not_found", "booking_id", id)
		return nil, nil
	}
	return booking, nil
}

func (c *Consumer) send(ctx context.Context, booking *models.Booking, msg Message) error {
	msg.BookingID = booking.ID
	msg.Email = strings.TrimSpace(booking.CustomerEmail)
	msg.Phone = strings.TrimSpace(booking.CustomerPhone)
	if msg.Email == "" && msg.Phone == "" {
		logger.Debugw("worker_booking_notify_skip_no_contact", "booking_id", booking.ID)
		return nil
	}
	if err := c.Notifier.Notify(ctx, msg); err != nil {
		logger.Warnw("worker_booking_notify_failed", "booking_id", booking.ID, "error", err)
		return err
	}
	return nil
}

func serviceName(booking *models.Booking) string {
	if booking == nil || booking.Service == nil {
		return ""
	}
	return booking.Service.Name
}
