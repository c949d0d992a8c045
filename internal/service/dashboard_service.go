package service

import (
	"time"

	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardRevenueDays = 30
	dashboardTrendDays   = 7
)

// DashboardService 仪表盘服务
// 说明：聚合后台首页的预约与经营数据。
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// DashboardOverview 仪表盘总览
type DashboardOverview struct {
	TodayBookings     int64                 `json:"today_bookings"`
	PendingBookings   int64                 `json:"pending_bookings"`
	PendingFeedback   int64                 `json:"pending_feedback"`
	UnhandledContacts int64                 `json:"unhandled_contacts"`
	ActivePromotions  int64                 `json:"active_promotions"`
	DoneBookings      int64                 `json:"done_bookings"`
	Revenue           models.Money          `json:"revenue"`
	DiscountGiven     models.Money          `json:"discount_given"`
	RevenueFrom       string                `json:"revenue_from"`
	Trends            []DashboardTrendPoint `json:"trends"`
}

// DashboardTrendPoint 每日预约趋势
type DashboardTrendPoint struct {
	Date    string       `json:"date"`
	Total   int64        `json:"total"`
	Done    int64        `json:"done"`
	Revenue models.Money `json:"revenue"`
}

// Overview 汇总当日与近 30 天数据
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	revenueStart := now.AddDate(0, 0, -dashboardRevenueDays)

	row, err := s.repo.GetOverview(repository.DashboardOverviewInput{
		Now:          now,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		RevenueStart: revenueStart,
	})
	if err != nil {
		return nil, err
	}

	trendStart := dayStart.AddDate(0, 0, -(dashboardTrendDays - 1))
	trendRows, err := s.repo.GetBookingTrends(trendStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		TodayBookings:     row.TodayBookings,
		PendingBookings:   row.PendingBookings,
		PendingFeedback:   row.PendingFeedback,
		UnhandledContacts: row.UnhandledContacts,
		ActivePromotions:  row.ActivePromotions,
		DoneBookings:      row.DoneBookings,
		Revenue:           moneyFromFloat(row.Revenue),
		DiscountGiven:     moneyFromFloat(row.DiscountGiven),
		RevenueFrom:       revenueStart.Format(time.RFC3339),
		Trends:            fillTrendDays(trendRows, trendStart, dashboardTrendDays),
	}, nil
}

// fillTrendDays 补齐无预约的日期
func fillTrendDays(rows []repository.DashboardBookingTrendRow, start time.Time, days int) []DashboardTrendPoint {
	byDay := make(map[string]repository.DashboardBookingTrendRow, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}
	points := make([]DashboardTrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		row := byDay[day]
		points = append(points, DashboardTrendPoint{
			Date:    day,
			Total:   row.Total,
			Done:    row.Done,
			Revenue: moneyFromFloat(row.Revenue),
		})
	}
	return points
}

func moneyFromFloat(value float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(value))
}
