package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/i18n"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/provider"
	"github.com/salon-next/internal/queue"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var workerNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	messages []Message
}

func (r *recordingNotifier) Notify(_ context.Context, msg Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func setupWorkerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, status string, at time.Time) *models.Booking {
	t.Helper()
	if err := db.Create(&models.ServiceCategory{ID: "cat-nail", Name: "Nail", Slug: "nail"}).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	if err := db.Create(&models.Service{
		ID: "svc-gel", CategoryID: "cat-nail", Name: "Gel polish", Slug: "gel-polish",
		BasePrice: models.NewMoney("200000"), DurationMins: 60, IsActive: true,
	}).Error; err != nil {
		t.Fatalf("seed service failed: %v", err)
	}
	booking := &models.Booking{
		ID:             "bk-1",
		ServiceID:      "svc-gel",
		DateTime:       at,
		DurationMins:   60,
		Status:         status,
		CustomerName:   "Lan",
		CustomerPhone:  "0900000000",
		CustomerEmail:  "lan@example.com",
		OriginalPrice:  models.NewMoney("200000"),
		DiscountAmount: models.NewMoney("25000"),
		TotalPrice:     models.NewMoney("175000"),
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	return booking
}

func newTestConsumer(db *gorm.DB) (*Consumer, *recordingNotifier) {
	notifier := &recordingNotifier{}
	consumer := NewConsumer(&provider.Container{BookingRepo: repository.NewBookingRepository(db)}, notifier)
	consumer.now = func() time.Time { return workerNow }
	return consumer, notifier
}

func mustTask(t *testing.T) func(*asynq.Task, error) *asynq.Task {
	return func(task *asynq.Task, err error) *asynq.Task {
		t.Helper()
		if err != nil {
			t.Fatalf("build task failed: %v", err)
		}
		return task
	}
}

func TestBookingConfirmationNotifiesCustomer(t *testing.T) {
	db := setupWorkerTestDB(t)
	seedBooking(t, db, constants.BookingStatusPending, workerNow.Add(48*time.Hour))
	consumer, notifier := newTestConsumer(db)

	task := mustTask(t)(queue.NewBookingConfirmationTask(queue.BookingConfirmationPayload{BookingID: "bk-1", Locale: i18n.LocaleEN}))
	if err := consumer.handleBookingConfirmation(context.Background(), task); err != nil {
		t.Fatalf("handle confirmation failed: %v", err)
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("want 1 message got %d", len(notifier.messages))
	}
	msg := notifier.messages[0]
	if msg.Email != "lan@example.com" || msg.BookingID != "bk-1" {
		t.Fatalf("unexpected recipient: %+v", msg)
	}
	if msg.Subject != "Booking confirmed" {
		t.Fatalf("unexpected subject: %s", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Gel polish") || !strings.Contains(msg.Body, "175000.00") {
		t.Fatalf("body should mention service and total, got %s", msg.Body)
	}
}

func TestBookingConfirmationMissingBooking(t *testing.T) {
	db := setupWorkerTestDB(t)
	consumer, notifier := newTestConsumer(db)

	task := mustTask(t)(queue.NewBookingConfirmationTask(queue.BookingConfirmationPayload{BookingID: "nope"}))
	if err := consumer.handleBookingConfirmation(context.Background(), task); err != nil {
		t.Fatalf("missing booking should be skipped, got %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("no message expected, got %d", len(notifier.messages))
	}

	bad := asynq.NewTask(queue.TaskBookingConfirmation, []byte("{"))
	if err := consumer.handleBookingConfirmation(context.Background(), bad); err == nil {
		t.Fatalf("malformed payload should fail")
	}
}

func TestBookingStatusNotifySkipsStaleStatus(t *testing.T) {
	db := setupWorkerTestDB(t)
	seedBooking(t, db, constants.BookingStatusConfirmed, workerNow.Add(48*time.Hour))
	consumer, notifier := newTestConsumer(db)

	stale := mustTask(t)(queue.NewBookingStatusNotifyTask(queue.BookingStatusNotifyPayload{
		BookingID: "bk-1", FromStatus: constants.BookingStatusPending, ToStatus: constants.BookingStatusCancelled,
	}))
	if err := consumer.handleBookingStatusNotify(context.Background(), stale); err != nil {
		t.Fatalf("handle stale failed: %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("stale status should not notify")
	}

	current := mustTask(t)(queue.NewBookingStatusNotifyTask(queue.BookingStatusNotifyPayload{
		BookingID: "bk-1", FromStatus: constants.BookingStatusPending, ToStatus: constants.BookingStatusConfirmed, Locale: i18n.LocaleEN,
	}))
	if err := consumer.handleBookingStatusNotify(context.Background(), current); err != nil {
		t.Fatalf("handle current failed: %v", err)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0].Body, constants.BookingStatusConfirmed) {
		t.Fatalf("unexpected messages: %+v", notifier.messages)
	}
}

func TestBookingReminderSkipsClosedOrPast(t *testing.T) {
	cases := []struct {
		name   string
		status string
		at     time.Time
		want   int
	}{
		{name: "upcoming", status: constants.BookingStatusConfirmed, at: workerNow.Add(2 * time.Hour), want: 1},
		{name: "cancelled", status: constants.BookingStatusCancelled, at: workerNow.Add(2 * time.Hour), want: 0},
		{name: "past", status: constants.BookingStatusPending, at: workerNow.Add(-time.Hour), want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupWorkerTestDB(t)
			seedBooking(t, db, tc.status, tc.at)
			consumer, notifier := newTestConsumer(db)

			task := mustTask(t)(queue.NewBookingReminderTask(queue.BookingReminderPayload{BookingID: "bk-1"}))
			if err := consumer.handleBookingReminder(context.Background(), task); err != nil {
				t.Fatalf("handle reminder failed: %v", err)
			}
			if len(notifier.messages) != tc.want {
				t.Fatalf("want %d messages got %d", tc.want, len(notifier.messages))
			}
		})
	}
}

func TestPromotionWatcherInvalidatesOnWindowChange(t *testing.T) {
	db := setupWorkerTestDB(t)
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis failed: %v", err)
	}
	cache.Use(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(func() {
		_ = cache.Close()
		mr.Close()
	})

	if err := db.Create(&models.Promotion{
		ID: "promo-later", Title: "Evening", DiscountType: constants.DiscountTypePercent,
		Value: models.NewMoney("10"), ScopeType: constants.ScopeTypeGlobal,
		StartAt: workerNow.Add(time.Hour), EndAt: workerNow.Add(3 * time.Hour), IsActive: true,
	}).Error; err != nil {
		t.Fatalf("seed promotion failed: %v", err)
	}

	now := workerNow
	repo := repository.NewPromotionRepository(db)
	pricingService := service.NewPricingService(repo, time.Hour, service.WithClock(func() time.Time { return now }))
	watcher := NewPromotionWatcher(repo, pricingService, time.Minute)
	ctx := context.Background()

	if changed, err := watcher.Tick(ctx); err != nil || changed {
		t.Fatalf("first tick only primes state, changed=%v err=%v", changed, err)
	}

	// 缓存中是活动开始前的快照
	if _, err := pricingService.ActivePromotions(ctx); err != nil {
		t.Fatalf("warm cache failed: %v", err)
	}
	if !mr.Exists("test:" + constants.CacheKeyActivePromotions) {
		t.Fatalf("active promotions should be cached")
	}

	now = workerNow.Add(90 * time.Minute)
	changed, err := watcher.Tick(ctx)
	if err != nil || !changed {
		t.Fatalf("promotion start should be detected, changed=%v err=%v", changed, err)
	}
	if mr.Exists("test:" + constants.CacheKeyActivePromotions) {
		t.Fatalf("cache should be invalidated after window change")
	}
	active, err := pricingService.ActivePromotions(ctx)
	if err != nil || len(active) != 1 {
		t.Fatalf("want 1 active promotion got %d err=%v", len(active), err)
	}

	if changed, _ := watcher.Tick(ctx); changed {
		t.Fatalf("unchanged window should not invalidate")
	}

	now = workerNow.Add(4 * time.Hour)
	if changed, _ := watcher.Tick(ctx); !changed {
		t.Fatalf("promotion expiry should be detected")
	}
}
