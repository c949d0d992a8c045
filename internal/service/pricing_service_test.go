package service

import (
	"context"
	"testing"
	"time"

	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

func TestActivePromotionsCachesAndInvalidates(t *testing.T) {
	db := setupServiceTestDB(t)
	mr := setupServiceMiniRedis(t)
	seedPromotion(t, db, "promo-global", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, nil)

	svc := NewPricingService(repository.NewPromotionRepository(db), time.Minute, WithClock(fixedClock))
	ctx := context.Background()

	first, err := svc.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(first) != 1 || first[0].ID != "promo-global" {
		t.Fatalf("unexpected active set: %+v", first)
	}
	if !mr.Exists("test:" + constants.CacheKeyActivePromotions) {
		t.Fatalf("active set should be cached")
	}

	if err := db.Where("id = ?", "promo-global").Delete(&models.Promotion{}).Error; err != nil {
		t.Fatalf("delete promotion failed: %v", err)
	}
	cached, err := svc.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected cached promotion, got %+v", cached)
	}

	svc.InvalidateActivePromotions(ctx)
	fresh, err := svc.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("expected empty set after invalidation, got %+v", fresh)
	}
}

func TestActivePromotionsFiltersExpiredCacheEntries(t *testing.T) {
	db := setupServiceTestDB(t)
	setupServiceMiniRedis(t)
	ctx := context.Background()

	stale := []models.Promotion{
		{ID: "expired", DiscountType: constants.DiscountTypeAmount, Value: models.NewMoney("5"), ScopeType: constants.ScopeTypeGlobal,
			StartAt: testNow.Add(-2 * time.Hour), EndAt: testNow.Add(-time.Second), IsActive: true},
		{ID: "live", DiscountType: constants.DiscountTypeAmount, Value: models.NewMoney("5"), ScopeType: constants.ScopeTypeGlobal,
			StartAt: testNow.Add(-2 * time.Hour), EndAt: testNow, IsActive: true},
	}
	if err := cache.SetActivePromotions(ctx, stale, time.Minute); err != nil {
		t.Fatalf("seed cache failed: %v", err)
	}

	svc := NewPricingService(repository.NewPromotionRepository(db), time.Minute, WithClock(fixedClock))
	active, err := svc.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != "live" {
		t.Fatalf("expired cache entry leaked: %+v", active)
	}
}

func TestQuoteWithoutCachePicksLargestDiscount(t *testing.T) {
	_ = cache.Close()
	db := setupServiceTestDB(t)
	category, gel, lash := seedCatalog(t, db)
	seedPromotion(t, db, "promo-global", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, nil)
	seedPromotion(t, db, "promo-nail", constants.DiscountTypeAmount, "30000", constants.ScopeTypeCategory, stringPtr(category.ID))

	svc := NewPricingService(repository.NewPromotionRepository(db), time.Minute, WithClock(fixedClock))
	ctx := context.Background()

	price, err := svc.Quote(ctx, &gel)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !price.HasDiscount || price.AppliedPromo == nil || price.AppliedPromo.ID != "promo-nail" {
		t.Fatalf("category promotion should win: %+v", price)
	}
	if price.Final.String() != "170000.00" {
		t.Fatalf("unexpected final price: %s", price.Final)
	}

	prices, err := svc.QuoteMany(ctx, []models.Service{gel, lash})
	if err != nil {
		t.Fatalf("quote many failed: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("want 2 quotes got %d", len(prices))
	}
	if prices[1].AppliedPromo == nil || prices[1].AppliedPromo.ID != "promo-global" {
		t.Fatalf("global promotion should apply to lash: %+v", prices[1])
	}
	if prices[1].Final.String() != "315000.00" {
		t.Fatalf("unexpected lash final price: %s", prices[1].Final)
	}
}
