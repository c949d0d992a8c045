package queue

import (
	"encoding/json"
	"fmt"

	"github.com/salon-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskBookingConfirmation 预约确认通知
	TaskBookingConfirmation = constants.TaskBookingConfirmationEmail
	// TaskBookingStatusNotify 预约状态变更通知
	TaskBookingStatusNotify = constants.TaskBookingStatusNotify
	// TaskBookingReminder 预约提醒
	TaskBookingReminder = constants.TaskBookingReminder
)

// BookingConfirmationPayload 预约确认任务载荷
type BookingConfirmationPayload struct {
	BookingID string `json:"booking_id"`
	Locale    string `json:"locale"`
}

// BookingStatusNotifyPayload 状态变更任务载荷
type BookingStatusNotifyPayload struct {
	BookingID  string `json:"booking_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Locale     string `json:"locale"`
}

// BookingReminderPayload 预约提醒任务载荷
type BookingReminderPayload struct {
	BookingID string `json:"booking_id"`
	Locale    string `json:"locale"`
}

// NewBookingConfirmationTask 创建预约确认任务
func NewBookingConfirmationTask(payload BookingConfirmationPayload) (*asynq.Task, error) {
	return newTask(TaskBookingConfirmation, payload)
}

// NewBookingStatusNotifyTask 创建状态变更任务
func NewBookingStatusNotifyTask(payload BookingStatusNotifyPayload) (*asynq.Task, error) {
	return newTask(TaskBookingStatusNotify, payload)
}

// NewBookingReminderTask 创建预约提醒任务
func NewBookingReminderTask(payload BookingReminderPayload) (*asynq.Task, error) {
	return newTask(TaskBookingReminder, payload)
}

// ParsePayload 解析任务载荷
func ParsePayload(task *asynq.Task, dest interface{}) error {
	if task == nil {
		return fmt.Errorf("task is nil")
	}
	if err := json.Unmarshal(task.Payload(), dest); err != nil {
		return fmt.Errorf("decode %s payload: %w", task.Type(), err)
	}
	return nil
}

func newTask(taskType string, payload interface{}) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body), nil
}
