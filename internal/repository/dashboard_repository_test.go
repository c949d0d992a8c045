package repository

import (
	"testing"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
)

func TestDashboardGetOverview(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewDashboardRepository(db)
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	dayStart := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ServiceID: "s1", DateTime: dayStart.Add(10 * time.Hour), Status: constants.BookingStatusPending, TotalPrice: models.NewMoney("80"), DiscountAmount: models.NewMoney("20")},
		{ServiceID: "s1", DateTime: dayStart.Add(11 * time.Hour), Status: constants.BookingStatusCancelled, TotalPrice: models.NewMoney("100")},
		{ServiceID: "s1", DateTime: now.Add(-48 * time.Hour), Status: constants.BookingStatusDone, TotalPrice: models.NewMoney("50.50"), DiscountAmount: models.NewMoney("4.50")},
		{ServiceID: "s1", DateTime: now.Add(-24 * time.Hour), Status: constants.BookingStatusDone, TotalPrice: models.NewMoney("19.50")},
		{ServiceID: "s1", DateTime: now.Add(-40 * 24 * time.Hour), Status: constants.BookingStatusDone, TotalPrice: models.NewMoney("999")},
	}
	for i := range bookings {
		bookings[i].DurationMins = 60
		if err := db.Create(&bookings[i]).Error; err != nil {
			t.Fatalf("create booking failed: %v", err)
		}
	}
	if err := db.Create(&models.Feedback{Rating: 5, Status: constants.FeedbackStatusPending}).Error; err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}
	if err := db.Create(&models.ContactMessage{Name: "An", Message: "hello"}).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	if err := db.Create(&models.Promotion{
		Title: "live", DiscountType: constants.DiscountTypeAmount, Value: models.NewMoney("5"),
		ScopeType: constants.ScopeTypeGlobal, StartAt: now.Add(-time.Hour), EndAt: now.Add(time.Hour), IsActive: true,
	}).Error; err != nil {
		t.Fatalf("create promotion failed: %v", err)
	}

	row, err := repo.GetOverview(DashboardOverviewInput{
		Now:          now,
		DayStart:     dayStart,
		DayEnd:       dayStart.Add(24 * time.Hour),
		RevenueStart: now.Add(-30 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if row.TodayBookings != 1 {
		t.Fatalf("today bookings want 1 got %d", row.TodayBookings)
	}
	if row.PendingBookings != 1 || row.PendingFeedback != 1 || row.UnhandledContacts != 1 || row.ActivePromotions != 1 {
		t.Fatalf("unexpected counters: %+v", row)
	}
	if row.DoneBookings != 2 {
		t.Fatalf("done bookings want 2 got %d", row.DoneBookings)
	}
	if row.Revenue < 69.99 || row.Revenue > 70.01 {
		t.Fatalf("revenue want 70 got %v", row.Revenue)
	}
	if row.DiscountGiven < 4.49 || row.DiscountGiven > 4.51 {
		t.Fatalf("discount want 4.5 got %v", row.DiscountGiven)
	}
}
