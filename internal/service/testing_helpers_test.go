package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/queue"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

func setupServiceMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis failed: %v", err)
	}
	cache.Use(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(func() {
		_ = cache.Close()
		mr.Close()
	})
	return mr
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
}

func (r *recordingEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("t%d", len(r.tasks)), Type: task.Type()}, nil
}

func (r *recordingEnqueuer) Close() error { return nil }

func (r *recordingEnqueuer) types() []string {
	result := make([]string, 0, len(r.tasks))
	for _, task := range r.tasks {
		result = append(result, task.Type())
	}
	return result
}

func newRecordingQueue() (*queue.Client, *recordingEnqueuer) {
	rec := &recordingEnqueuer{}
	return queue.NewClientWith(rec), rec
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T failed: %v", value, err)
	}
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.ServiceCategory, models.Service, models.Service) {
	t.Helper()
	category := models.ServiceCategory{ID: "cat-nail", Name: "Nail", Slug: "nail"}
	mustCreate(t, db, &category)
	gel := models.Service{
		ID: "svc-gel", CategoryID: category.ID, Name: "Gel polish", Slug: "gel-polish",
		BasePrice: models.NewMoney("200000"), DurationMins: 60, IsActive: true,
	}
	mustCreate(t, db, &gel)
	mustCreate(t, db, &models.ServiceCategory{ID: "cat-lash", Name: "Eyelash", Slug: "eyelash"})
	lash := models.Service{
		ID: "svc-lash", CategoryID: "cat-lash", Name: "Lash lift", Slug: "lash-lift",
		BasePrice: models.NewMoney("350000"), DurationMins: 90, IsActive: true,
	}
	mustCreate(t, db, &lash)
	return category, gel, lash
}

func seedPromotion(t *testing.T, db *gorm.DB, id, discountType, value, scopeType string, scopeID *string) models.Promotion {
	t.Helper()
	promotion := models.Promotion{
		ID:           id,
		Title:        id,
		DiscountType: discountType,
		Value:        models.NewMoney(value),
		ScopeType:    scopeType,
		ScopeID:      scopeID,
		StartAt:      testNow.Add(-24 * time.Hour),
		EndAt:        testNow.Add(24 * time.Hour),
		IsActive:     true,
		CreatedAt:    testNow.Add(-48 * time.Hour),
	}
	mustCreate(t, db, &promotion)
	return promotion
}

func stringPtr(v string) *string {
	return &v
}
