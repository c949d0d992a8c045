package service

import (
	"context"

	"github.com/salon-next/internal/models"
)

// PromotionService 前台活动查询
type PromotionService struct {
	pricing *PricingService
}

// NewPromotionService 创建活动查询服务
func NewPromotionService(pricingService *PricingService) *PromotionService {
	return &PromotionService{pricing: pricingService}
}

// ListActive 当前生效的活动
func (s *PromotionService) ListActive(ctx context.Context) ([]models.Promotion, error) {
	return s.pricing.ActivePromotions(ctx)
}
