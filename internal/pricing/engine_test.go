package pricing

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"

	"github.com/shopspring/decimal"
)

func newService(id, categoryID, basePrice string) *models.Service {
	return &models.Service{
		ID:         id,
		CategoryID: categoryID,
		BasePrice:  models.NewMoney(basePrice),
	}
}

func newPromotion(id, discountType, value, scopeType, scopeID string) models.Promotion {
	promotion := models.Promotion{
		ID:           id,
		Title:        id,
		DiscountType: discountType,
		Value:        models.NewMoney(value),
		ScopeType:    scopeType,
		IsActive:     true,
	}
	if scopeID != "" {
		ref := scopeID
		promotion.ScopeID = &ref
	}
	return promotion
}

func assertMoney(t *testing.T, field string, got models.Money, want string) {
	t.Helper()
	if !got.Decimal.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s want %s got %s", field, want, got.Decimal.String())
	}
}

func TestComputeEffectivePriceNoPromotions(t *testing.T) {
	result := ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), nil)

	assertMoney(t, "original", result.Original, "100")
	assertMoney(t, "final", result.Final, "100")
	assertMoney(t, "discount", result.Discount, "0")
	if result.HasDiscount {
		t.Fatalf("expected has_discount=false")
	}
	if result.AppliedPromo != nil {
		t.Fatalf("expected no applied promotion, got %s", result.AppliedPromo.ID)
	}
}

func TestComputeEffectivePriceGlobalPercent(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("global-20", constants.DiscountTypePercent, "20", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), promos)

	assertMoney(t, "original", result.Original, "100")
	assertMoney(t, "final", result.Final, "80")
	assertMoney(t, "discount", result.Discount, "20")
	if !result.HasDiscount {
		t.Fatalf("expected has_discount=true")
	}
	if result.AppliedPromo == nil || result.AppliedPromo.ID != "global-20" {
		t.Fatalf("expected global-20 applied, got %+v", result.AppliedPromo)
	}
}

func TestComputeEffectivePriceComparesByCurrencyEffect(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("A", constants.DiscountTypeAmount, "5", constants.ScopeTypeGlobal, ""),
		newPromotion("B", constants.DiscountTypePercent, "20", constants.ScopeTypeCategory, "nail"),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "50.00"), promos)

	assertMoney(t, "final", result.Final, "40")
	assertMoney(t, "discount", result.Discount, "10")
	if result.AppliedPromo == nil || result.AppliedPromo.ID != "B" {
		t.Fatalf("expected promo B applied, got %+v", result.AppliedPromo)
	}
}

func TestComputeEffectivePriceFlatAmountBeatsSmallerPercent(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("pct-10", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, ""),
		newPromotion("flat-15", constants.DiscountTypeAmount, "15", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), promos)

	if result.AppliedPromo == nil || result.AppliedPromo.ID != "flat-15" {
		t.Fatalf("expected flat-15 applied, got %+v", result.AppliedPromo)
	}
	assertMoney(t, "final", result.Final, "85")
}

func TestComputeEffectivePriceFloorsFinalAtZero(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("flat-50", constants.DiscountTypeAmount, "50", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "30.00"), promos)

	assertMoney(t, "original", result.Original, "30")
	assertMoney(t, "final", result.Final, "0")
	assertMoney(t, "discount", result.Discount, "50")
	if !result.HasDiscount {
		t.Fatalf("expected has_discount=true")
	}
}

func TestComputeEffectivePriceTieKeepsFirst(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("PromoX", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, ""),
		newPromotion("PromoY", constants.DiscountTypeAmount, "10", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), promos)
	if result.AppliedPromo == nil || result.AppliedPromo.ID != "PromoX" {
		t.Fatalf("expected PromoX applied, got %+v", result.AppliedPromo)
	}

	reversed := []models.Promotion{promos[1], promos[0]}
	result = ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), reversed)
	if result.AppliedPromo == nil || result.AppliedPromo.ID != "PromoY" {
		t.Fatalf("expected PromoY applied after reorder, got %+v", result.AppliedPromo)
	}
}

func TestComputeEffectivePriceServiceScopeMismatch(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("other-service", constants.DiscountTypePercent, "50", constants.ScopeTypeService, "svc-other"),
	}
	result := ComputeEffectivePrice(newService("svc-1", "facial", "80.00"), promos)

	assertMoney(t, "discount", result.Discount, "0")
	assertMoney(t, "final", result.Final, "80")
	if result.HasDiscount || result.AppliedPromo != nil {
		t.Fatalf("expected promotion for another service to be ignored, got %+v", result)
	}
}

func TestComputeEffectivePriceScopeRules(t *testing.T) {
	service := newService("svc-1", "nail", "100.00")
	cases := []struct {
		name  string
		promo models.Promotion
		want  bool
	}{
		{name: "global", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeGlobal, ""), want: true},
		{name: "category match", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeCategory, "nail"), want: true},
		{name: "category mismatch", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeCategory, "facial"), want: false},
		{name: "category without scope id", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeCategory, ""), want: false},
		{name: "service match", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeService, "svc-1"), want: true},
		{name: "service mismatch", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeService, "svc-2"), want: false},
		{name: "service scope uses category id", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeService, "nail"), want: false},
		{name: "category id must match exactly", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeCategory, " nail"), want: false},
		{name: "service id must match exactly", promo: newPromotion("p", constants.DiscountTypeAmount, "1", constants.ScopeTypeService, "svc-1 "), want: false},
		{name: "unknown scope", promo: newPromotion("p", constants.DiscountTypeAmount, "1", "BRAND", "nail"), want: false},
		{name: "lowercase scope is not recognized", promo: newPromotion("p", constants.DiscountTypeAmount, "1", "global", ""), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsApplicable(service, &tc.promo); got != tc.want {
				t.Fatalf("applicable want %v got %v", tc.want, got)
			}
			result := ComputeEffectivePrice(service, []models.Promotion{tc.promo})
			if result.HasDiscount != tc.want {
				t.Fatalf("has_discount want %v got %v", tc.want, result.HasDiscount)
			}
		})
	}
}

func TestComputeEffectivePriceServiceWithoutCategory(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("cat", constants.DiscountTypeAmount, "5", constants.ScopeTypeCategory, "nail"),
	}
	result := ComputeEffectivePrice(newService("svc-1", "", "20.00"), promos)
	if result.HasDiscount {
		t.Fatalf("category promotion must not apply to uncategorized service")
	}
}

func TestComputeEffectivePriceNonPositiveValuesNeverWin(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("negative", constants.DiscountTypeAmount, "-5", constants.ScopeTypeGlobal, ""),
		newPromotion("zero", constants.DiscountTypePercent, "0", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "40.00"), promos)

	assertMoney(t, "final", result.Final, "40")
	if result.HasDiscount || result.AppliedPromo != nil {
		t.Fatalf("non-positive candidates should not be applied, got %+v", result)
	}
}

func TestComputeEffectivePriceKeepsFractionalPrecision(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("pct", constants.DiscountTypePercent, "15", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "19.99"), promos)

	assertMoney(t, "discount", result.Discount, "2.9985")
	assertMoney(t, "final", result.Final, "16.9915")
	if result.Final.String() != "16.99" || result.Discount.String() != "3.00" {
		t.Fatalf("unexpected display values final=%s discount=%s", result.Final.String(), result.Discount.String())
	}
}

func TestComputeEffectivePriceDoesNotMutateInput(t *testing.T) {
	promos := []models.Promotion{
		newPromotion("pct", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, ""),
	}
	result := ComputeEffectivePrice(newService("svc-1", "nail", "100.00"), promos)
	result.AppliedPromo.Title = "changed"
	if promos[0].Title != "pct" {
		t.Fatalf("applied promotion should be a copy, input title became %s", promos[0].Title)
	}
}

func TestComputeEffectivePriceInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	categories := []string{"nail", "eyelash", "facial", ""}
	scopes := []string{constants.ScopeTypeGlobal, constants.ScopeTypeCategory, constants.ScopeTypeService, "UNKNOWN"}
	types := []string{constants.DiscountTypePercent, constants.DiscountTypeAmount}

	for i := 0; i < 500; i++ {
		service := newService(fmt.Sprintf("svc-%d", rng.Intn(4)), categories[rng.Intn(len(categories))],
			decimal.NewFromInt(int64(rng.Intn(20000))).Div(decimal.NewFromInt(100)).String())

		promos := make([]models.Promotion, rng.Intn(6))
		for j := range promos {
			scope := scopes[rng.Intn(len(scopes))]
			scopeID := ""
			switch scope {
			case constants.ScopeTypeCategory:
				scopeID = categories[rng.Intn(len(categories)-1)]
			case constants.ScopeTypeService:
				scopeID = fmt.Sprintf("svc-%d", rng.Intn(4))
			}
			value := decimal.NewFromInt(int64(rng.Intn(15000))).Div(decimal.NewFromInt(100)).String()
			promos[j] = newPromotion(fmt.Sprintf("p-%d", j), types[rng.Intn(len(types))], value, scope, scopeID)
		}

		result := ComputeEffectivePrice(service, promos)
		again := ComputeEffectivePrice(service, promos)

		if result.Final.Decimal.IsNegative() {
			t.Fatalf("case %d: final must be >= 0, got %s", i, result.Final.Decimal)
		}
		if result.Final.Decimal.GreaterThan(result.Original.Decimal) {
			t.Fatalf("case %d: final %s exceeds original %s", i, result.Final.Decimal, result.Original.Decimal)
		}
		if result.Discount.Decimal.LessThanOrEqual(result.Original.Decimal) {
			if !result.Original.Decimal.Sub(result.Final.Decimal).Equal(result.Discount.Decimal) {
				t.Fatalf("case %d: discount %s != original-final", i, result.Discount.Decimal)
			}
		} else if !result.Final.Decimal.IsZero() {
			t.Fatalf("case %d: oversized discount must floor final to zero", i)
		}
		if result.HasDiscount != result.Discount.Decimal.IsPositive() {
			t.Fatalf("case %d: has_discount inconsistent with discount %s", i, result.Discount.Decimal)
		}

		anyApplicable := false
		for j := range promos {
			if IsApplicable(service, &promos[j]) {
				anyApplicable = true
			}
		}
		if !anyApplicable && (result.HasDiscount || result.AppliedPromo != nil) {
			t.Fatalf("case %d: discount applied without applicable promotion", i)
		}
		if result.AppliedPromo != nil && !IsApplicable(service, result.AppliedPromo) {
			t.Fatalf("case %d: applied promotion out of scope", i)
		}

		if !result.Final.Decimal.Equal(again.Final.Decimal) || !result.Discount.Decimal.Equal(again.Discount.Decimal) ||
			result.HasDiscount != again.HasDiscount || (result.AppliedPromo == nil) != (again.AppliedPromo == nil) {
			t.Fatalf("case %d: repeated call produced a different result", i)
		}
		if result.AppliedPromo != nil && result.AppliedPromo.ID != again.AppliedPromo.ID {
			t.Fatalf("case %d: repeated call picked a different promotion", i)
		}
	}
}

func TestFilterActive(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)

	window := func(id string, active bool) models.Promotion {
		p := newPromotion(id, constants.DiscountTypeAmount, "1", constants.ScopeTypeGlobal, "")
		p.StartAt = start
		p.EndAt = end
		p.IsActive = active
		return p
	}
	promos := []models.Promotion{window("a", true), window("disabled", false), window("b", true)}

	cases := []struct {
		name string
		now  time.Time
		want []string
	}{
		{name: "before start", now: start.Add(-time.Second), want: nil},
		{name: "at start", now: start, want: []string{"a", "b"}},
		{name: "inside", now: start.Add(48 * time.Hour), want: []string{"a", "b"}},
		{name: "at end", now: end, want: []string{"a", "b"}},
		{name: "after end", now: end.Add(time.Second), want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterActive(promos, tc.now)
			if len(got) != len(tc.want) {
				t.Fatalf("active count want %d got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i].ID != tc.want[i] {
					t.Fatalf("active[%d] want %s got %s", i, tc.want[i], got[i].ID)
				}
			}
		})
	}
}
