package service

import (
	"errors"
	"testing"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

func TestDashboardOverview(t *testing.T) {
	db := setupServiceTestDB(t)
	seedCatalog(t, db)
	yesterday := testNow.Add(-24 * time.Hour)
	bookings := []models.Booking{
		{ServiceID: "svc-gel", DateTime: yesterday, DurationMins: 60, Status: constants.BookingStatusDone,
			OriginalPrice: models.NewMoney("200000"), DiscountAmount: models.NewMoney("20000"), TotalPrice: models.NewMoney("180000")},
		{ServiceID: "svc-gel", DateTime: testNow.Add(2 * time.Hour), DurationMins: 60, Status: constants.BookingStatusPending,
			OriginalPrice: models.NewMoney("200000"), TotalPrice: models.NewMoney("200000")},
		{ServiceID: "svc-lash", DateTime: testNow.Add(3 * time.Hour), DurationMins: 90, Status: constants.BookingStatusCancelled,
			OriginalPrice: models.NewMoney("350000"), TotalPrice: models.NewMoney("350000")},
	}
	for i := range bookings {
		mustCreate(t, db, &bookings[i])
	}
	mustCreate(t, db, &models.Feedback{Rating: 4, Comment: "ok", Status: constants.FeedbackStatusPending})
	mustCreate(t, db, &models.ContactMessage{Name: "An", Message: "price?"})
	seedPromotion(t, db, "promo-live", constants.DiscountTypePercent, "10", constants.ScopeTypeGlobal, nil)

	svc := NewDashboardService(repository.NewDashboardRepository(db))
	svc.now = fixedClock

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TodayBookings != 1 || overview.PendingBookings != 1 {
		t.Fatalf("unexpected booking counters: %+v", overview)
	}
	if overview.PendingFeedback != 1 || overview.UnhandledContacts != 1 || overview.ActivePromotions != 1 {
		t.Fatalf("unexpected moderation counters: %+v", overview)
	}
	if overview.DoneBookings != 1 || overview.Revenue.String() != "180000.00" || overview.DiscountGiven.String() != "20000.00" {
		t.Fatalf("unexpected revenue: %+v", overview)
	}
	if len(overview.Trends) != dashboardTrendDays {
		t.Fatalf("want %d trend points got %d", dashboardTrendDays, len(overview.Trends))
	}
	last := overview.Trends[len(overview.Trends)-1]
	prev := overview.Trends[len(overview.Trends)-2]
	if last.Date != "2026-03-10" || last.Total != 2 {
		t.Fatalf("unexpected today trend: %+v", last)
	}
	if prev.Date != "2026-03-09" || prev.Done != 1 || prev.Revenue.String() != "180000.00" {
		t.Fatalf("unexpected yesterday trend: %+v", prev)
	}
}

func TestFeedbackModeration(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db))

	if _, err := svc.Submit(CreateFeedbackInput{Rating: 6, Comment: "wow"}); !errors.Is(err, ErrFeedbackRating) {
		t.Fatalf("want rating error got %v", err)
	}
	created, err := svc.Submit(CreateFeedbackInput{Rating: 5, Comment: " Lovely lashes ", CustomerName: "Hoa"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Status != constants.FeedbackStatusPending || created.Comment != "Lovely lashes" {
		t.Fatalf("unexpected feedback: %+v", created)
	}

	public, _, err := svc.ListPublic(repository.FeedbackListFilter{})
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("pending feedback should be hidden")
	}

	approved := "approved"
	featured := true
	if _, err := svc.Update(created.ID, UpdateFeedbackInput{Status: &approved, IsFeatured: &featured}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	public, _, err = svc.ListPublic(repository.FeedbackListFilter{OnlyFeatured: true})
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(public) != 1 || !public[0].IsFeatured {
		t.Fatalf("approved featured feedback should be listed: %+v", public)
	}
}
