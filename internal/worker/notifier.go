package worker

import (
	"context"

	"github.com/salon-next/internal/logger"
)

// Message 发给顾客的通知
type Message struct {
	BookingID string
	Email     string
	Phone     string
	Subject   string
	Body      string
}

// Notifier 通知发送渠道
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier 仅记录日志的通知实现
type LogNotifier struct{}

// Notify 记录通知内容
func (LogNotifier) Notify(_ context.Context, msg Message) error {
	logger.Infow("booking_notification",
		"booking_id", msg.BookingID,
		"email", msg.Email,
		"phone", msg.Phone,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
