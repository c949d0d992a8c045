package worker

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"
)

const defaultWatchInterval = 30 * time.Second

// PromotionWatcher 活动窗口巡检
// 生效活动集合变化（开始或到期）时清除活动缓存，使价格在窗口边界及时切换。
type PromotionWatcher struct {
	repo     repository.PromotionRepository
	pricing  *service.PricingService
	interval time.Duration

	mu      sync.Mutex
	lastSet string
	primed  bool
}

// NewPromotionWatcher 创建活动窗口巡检
func NewPromotionWatcher(repo repository.PromotionRepository, pricingService *service.PricingService, interval time.Duration) *PromotionWatcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &PromotionWatcher{repo: repo, pricing: pricingService, interval: interval}
}

// Tick 执行一次巡检，返回是否触发了缓存失效
func (w *PromotionWatcher) Tick(ctx context.Context) (bool, error) {
	if w == nil || w.repo == nil || w.pricing == nil {
		return false, nil
	}
	promotions, err := w.repo.ListActive(w.pricing.Now())
	if err != nil {
		return false, err
	}
	ids := make([]string, 0, len(promotions))
	for _, p := range promotions {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	current := strings.Join(ids, ",")

	w.mu.Lock()
	changed := w.primed && current != w.lastSet
	w.lastSet = current
	w.primed = true
	w.mu.Unlock()

	if changed {
		w.pricing.InvalidateActivePromotions(ctx)
		logger.Infow("promotion_window_changed", "active_count", len(ids))
	}
	return changed, nil
}

// Run 按间隔巡检直到 ctx 结束
func (w *PromotionWatcher) Run(ctx context.Context) {
	if w == nil {
		return
	}
	runOnce := func() {
		if _, err := w.Tick(ctx); err != nil {
			logger.Warnw("worker_promotion_watch_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
