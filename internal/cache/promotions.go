package cache

import (
	"context"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
)

// GetActivePromotions 读取生效活动快照，未命中返回 false
func GetActivePromotions(ctx context.Context) ([]models.Promotion, bool, error) {
	var promotions []models.Promotion
	hit, err := GetJSON(ctx, constants.CacheKeyActivePromotions, &promotions)
	if err != nil || !hit {
		return nil, hit, err
	}
	return promotions, true, nil
}

// SetActivePromotions 写入生效活动快照，ttl 不大于 0 时跳过
func SetActivePromotions(ctx context.Context, promotions []models.Promotion, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if promotions == nil {
		promotions = []models.Promotion{}
	}
	return SetJSON(ctx, constants.CacheKeyActivePromotions, promotions, ttl)
}

// DelActivePromotions 活动变更后清除快照
func DelActivePromotions(ctx context.Context) error {
	return Del(ctx, constants.CacheKeyActivePromotions)
}
