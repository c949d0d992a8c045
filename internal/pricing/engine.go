// Package pricing 计算服务项目在活动折扣下的实际价格。
//
// 引擎是纯函数：不读时钟、不做 I/O、不修改入参，可在任意 goroutine 并发调用。
// 活动时间窗口的筛选由调用方通过 FilterActive 或仓库查询完成。
package pricing

import (
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice 定价结果
type EffectivePrice struct {
	Original     models.Money      `json:"original"`
	Final        models.Money      `json:"final"`
	Discount     models.Money      `json:"discount"`
	HasDiscount  bool              `json:"has_discount"`
	AppliedPromo *models.Promotion `json:"applied_promo,omitempty"`
}

// ComputeEffectivePrice 在已生效活动中挑选折扣最大的一个应用到服务原价上。
//
// 折扣相同时保留输入顺序中先出现的活动；折扣额不封顶，最终价格不低于 0。
func ComputeEffectivePrice(service *models.Service, promotions []models.Promotion) EffectivePrice {
	base := decimal.Zero
	if service != nil {
		base = service.BasePrice.Decimal
	}

	best := decimal.Zero
	bestIdx := -1
	for i := range promotions {
		if !IsApplicable(service, &promotions[i]) {
			continue
		}
		candidate := CandidateDiscount(base, &promotions[i])
		if candidate.GreaterThan(best) {
			best = candidate
			bestIdx = i
		}
	}

	result := EffectivePrice{
		Original: models.Money{Decimal: base},
		Final:    models.Money{Decimal: base},
		Discount: models.Zero(),
	}
	if bestIdx < 0 {
		return result
	}

	final := base.Sub(best)
	if final.IsNegative() {
		final = decimal.Zero
	}
	applied := promotions[bestIdx]
	result.Final = models.Money{Decimal: final}
	result.Discount = models.Money{Decimal: best}
	result.HasDiscount = true
	result.AppliedPromo = &applied
	return result
}

// IsApplicable 判断活动范围是否覆盖该服务
func IsApplicable(service *models.Service, promotion *models.Promotion) bool {
	if service == nil || promotion == nil {
		return false
	}
	switch promotion.ScopeType {
	case constants.ScopeTypeGlobal:
		return true
	case constants.ScopeTypeCategory:
		ref := promotion.ScopeRef()
		return ref != "" && ref == service.CategoryID
	case constants.ScopeTypeService:
		ref := promotion.ScopeRef()
		return ref != "" && ref == service.ID
	default:
		return false
	}
}

// CandidateDiscount 计算单个活动对原价的折扣额
//
// PERCENT 按原价百分比计算，其余类型按固定金额处理；不校验数值符号。
func CandidateDiscount(base decimal.Decimal, promotion *models.Promotion) decimal.Decimal {
	if promotion == nil {
		return decimal.Zero
	}
	if promotion.DiscountType == constants.DiscountTypePercent {
		return base.Mul(promotion.Value.Decimal).Div(hundred)
	}
	return promotion.Value.Decimal
}

// IsActiveAt 判断活动在指定时刻是否生效（起止时间均包含）
func IsActiveAt(promotion *models.Promotion, now time.Time) bool {
	if promotion == nil || !promotion.IsActive {
		return false
	}
	return !now.Before(promotion.StartAt) && !now.After(promotion.EndAt)
}

// FilterActive 按时间窗口筛选生效活动，保持原有顺序
func FilterActive(promotions []models.Promotion, now time.Time) []models.Promotion {
	active := make([]models.Promotion, 0, len(promotions))
	for i := range promotions {
		if IsActiveAt(&promotions[i], now) {
			active = append(active, promotions[i])
		}
	}
	return active
}
