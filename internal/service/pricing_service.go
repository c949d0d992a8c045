package service

import (
	"context"
	"time"

	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/metrics"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/pricing"
	"github.com/salon-next/internal/repository"
)

// PricingService 连接定价引擎与活动存储
type PricingService struct {
	repo     repository.PromotionRepository
	cacheTTL time.Duration
	now      func() time.Time
}

// PricingOption 定价服务选项
type PricingOption func(*PricingService)

// WithClock 注入时钟，测试用
func WithClock(now func() time.Time) PricingOption {
	return func(s *PricingService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPricingService 创建定价服务
func NewPricingService(repo repository.PromotionRepository, cacheTTL time.Duration, opts ...PricingOption) *PricingService {
	s := &PricingService{
		repo:     repo,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now 当前时刻
func (s *PricingService) Now() time.Time {
	return s.now()
}

// ActivePromotions 获取当前生效活动，优先读缓存
func (s *PricingService) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	now := s.now()

	cached, hit, err := cache.GetActivePromotions(ctx)
	switch {
	case err != nil:
		metrics.ObservePromotionCache(metrics.ResultError)
		logger.Warnw("pricing_cache_read_failed", "error", err)
	case hit:
		metrics.ObservePromotionCache(metrics.ResultHit)
		return pricing.FilterActive(cached, now), nil
	default:
		metrics.ObservePromotionCache(metrics.ResultMiss)
	}

	promotions, err := s.repo.ListActive(now)
	if err != nil {
		return nil, err
	}
	if err := cache.SetActivePromotions(ctx, promotions, s.cacheTTL); err != nil {
		logger.Warnw("pricing_cache_write_failed", "error", err)
	}
	return pricing.FilterActive(promotions, now), nil
}

// Quote 计算单个服务的实际价格
func (s *PricingService) Quote(ctx context.Context, svc *models.Service) (pricing.EffectivePrice, error) {
	promotions, err := s.ActivePromotions(ctx)
	if err != nil {
		return pricing.EffectivePrice{}, err
	}
	price := pricing.ComputeEffectivePrice(svc, promotions)
	metrics.ObserveQuote(price.HasDiscount)
	return price, nil
}

// QuoteMany 批量计算，整个列表只读取一次活动
func (s *PricingService) QuoteMany(ctx context.Context, services []models.Service) ([]pricing.EffectivePrice, error) {
	promotions, err := s.ActivePromotions(ctx)
	if err != nil {
		return nil, err
	}
	prices := make([]pricing.EffectivePrice, len(services))
	for i := range services {
		prices[i] = pricing.ComputeEffectivePrice(&services[i], promotions)
		metrics.ObserveQuote(prices[i].HasDiscount)
	}
	return prices, nil
}

// InvalidateActivePromotions 清除生效活动缓存
func (s *PricingService) InvalidateActivePromotions(ctx context.Context) {
	if err := cache.DelActivePromotions(ctx); err != nil {
		logger.Warnw("pricing_cache_invalidate_failed", "error", err)
	}
}
