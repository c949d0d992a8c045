package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

func newPromotionAdminForTest(t *testing.T) (*PromotionAdminService, *PricingService) {
	t.Helper()
	db := setupServiceTestDB(t)
	seedCatalog(t, db)
	promotionRepo := repository.NewPromotionRepository(db)
	pricingService := NewPricingService(promotionRepo, time.Minute, WithClock(fixedClock))
	admin := NewPromotionAdminService(
		promotionRepo,
		repository.NewServiceRepository(db),
		repository.NewCategoryRepository(db),
		pricingService,
	)
	return admin, pricingService
}

func validPromotionInput() PromotionInput {
	return PromotionInput{
		Title:        "Tet sale",
		DiscountType: "percent",
		Value:        models.NewMoney("15"),
		ScopeType:    "global",
		StartAt:      testNow.Add(-time.Hour),
		EndAt:        testNow.Add(time.Hour),
	}
}

func TestPromotionAdminValidation(t *testing.T) {
	admin, _ := newPromotionAdminForTest(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*PromotionInput)
		want   error
	}{
		{"title", func(in *PromotionInput) { in.Title = "  " }, ErrPromotionTitleRequired},
		{"type", func(in *PromotionInput) { in.DiscountType = "BOGO" }, ErrPromotionTypeInvalid},
		{"zero value", func(in *PromotionInput) { in.Value = models.Zero() }, ErrPromotionValueInvalid},
		{"negative value", func(in *PromotionInput) { in.Value = models.NewMoney("-1") }, ErrPromotionValueInvalid},
		{"percent above 100", func(in *PromotionInput) { in.Value = models.NewMoney("100.01") }, ErrPromotionPercentInvalid},
		{"scope type", func(in *PromotionInput) { in.ScopeType = "STORE" }, ErrPromotionScopeInvalid},
		{"category without id", func(in *PromotionInput) { in.ScopeType = constants.ScopeTypeCategory }, ErrPromotionScopeInvalid},
		{"missing category", func(in *PromotionInput) {
			in.ScopeType = constants.ScopeTypeCategory
			in.ScopeID = stringPtr("cat-unknown")
		}, ErrPromotionScopeTargetNotFound},
		{"missing service", func(in *PromotionInput) {
			in.ScopeType = constants.ScopeTypeService
			in.ScopeID = stringPtr("svc-unknown")
		}, ErrPromotionScopeTargetNotFound},
		{"window", func(in *PromotionInput) { in.EndAt = in.StartAt.Add(-time.Second) }, ErrPromotionWindowInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPromotionInput()
			tc.mutate(&input)
			_, err := admin.Create(ctx, input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
			if !errors.Is(err, ErrPromotionInvalid) {
				t.Fatalf("validation error should wrap ErrPromotionInvalid: %v", err)
			}
		})
	}
}

func TestPromotionAdminCreateNormalizesAndInvalidatesCache(t *testing.T) {
	setupServiceMiniRedis(t)
	admin, pricingService := newPromotionAdminForTest(t)
	ctx := context.Background()

	before, err := pricingService.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected no promotions, got %+v", before)
	}

	input := validPromotionInput()
	input.ScopeID = stringPtr("svc-gel")
	created, err := admin.Create(ctx, input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.DiscountType != constants.DiscountTypePercent || created.ScopeType != constants.ScopeTypeGlobal {
		t.Fatalf("enum values should be upper-cased: %+v", created)
	}
	if created.ScopeID != nil {
		t.Fatalf("global promotion should drop scope id: %v", *created.ScopeID)
	}
	if !created.IsActive {
		t.Fatalf("promotion should default to active")
	}

	after, err := pricingService.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(after) != 1 || after[0].ID != created.ID {
		t.Fatalf("cache should be invalidated after create: %+v", after)
	}

	disabled := false
	input.IsActive = &disabled
	if _, err := admin.Update(ctx, created.ID, input); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	afterUpdate, err := pricingService.ActivePromotions(ctx)
	if err != nil {
		t.Fatalf("active promotions failed: %v", err)
	}
	if len(afterUpdate) != 0 {
		t.Fatalf("disabled promotion should leave the active set: %+v", afterUpdate)
	}
}

func TestPromotionAdminPreview(t *testing.T) {
	admin, _ := newPromotionAdminForTest(t)
	ctx := context.Background()

	input := validPromotionInput()
	input.DiscountType = constants.DiscountTypeAmount
	input.Value = models.NewMoney("250000")
	input.ScopeType = constants.ScopeTypeCategory
	input.ScopeID = stringPtr("  cat-nail ")
	created, err := admin.Create(ctx, input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ScopeRef() != "cat-nail" {
		t.Fatalf("scope id should be trimmed on write, got %q", created.ScopeRef())
	}

	items, err := admin.Preview(created.ID)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(items) != 1 || items[0].ServiceID != "svc-gel" {
		t.Fatalf("preview should only cover the nail category: %+v", items)
	}
	if items[0].Discount.String() != "250000.00" || items[0].FinalPrice.String() != "0.00" {
		t.Fatalf("oversized discount should clamp final price: %+v", items[0])
	}

	if _, err := admin.Preview("missing"); !errors.Is(err, ErrPromotionNotFound) {
		t.Fatalf("want not found got %v", err)
	}
}
