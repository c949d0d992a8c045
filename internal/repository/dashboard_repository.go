package repository

import (
	"fmt"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(input DashboardOverviewInput) (DashboardOverviewRow, error)
	GetBookingTrends(startAt, endAt time.Time) ([]DashboardBookingTrendRow, error)
}

// DashboardOverviewInput 总览统计时间参数
type DashboardOverviewInput struct {
	Now          time.Time
	DayStart     time.Time
	DayEnd       time.Time
	RevenueStart time.Time
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	TodayBookings     int64
	PendingBookings   int64
	PendingFeedback   int64
	UnhandledContacts int64
	ActivePromotions  int64
	DoneBookings      int64
	Revenue           float64
	DiscountGiven     float64
}

// DashboardBookingTrendRow 预约趋势统计
type DashboardBookingTrendRow struct {
	Day     string
	Total   int64
	Done    int64
	Revenue float64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(input DashboardOverviewInput) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	if err := r.db.Model(&models.Booking{}).
		Where("date_time >= ? AND date_time < ?", input.DayStart, input.DayEnd).
		Where("status <> ?", constants.BookingStatusCancelled).
		Count(&result.TodayBookings).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Booking{}).
		Where("status = ?", constants.BookingStatusPending).
		Count(&result.PendingBookings).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Feedback{}).
		Where("status = ?", constants.FeedbackStatusPending).
		Count(&result.PendingFeedback).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.ContactMessage{}).
		Where("handled = ?", false).
		Count(&result.UnhandledContacts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Promotion{}).
		Where("is_active = ? AND start_at <= ? AND end_at >= ?", true, input.Now, input.Now).
		Count(&result.ActivePromotions).Error; err != nil {
		return result, err
	}

	doneBase := func() *gorm.DB {
		return r.db.Model(&models.Booking{}).
			Where("status = ? AND date_time >= ? AND date_time <= ?", constants.BookingStatusDone, input.RevenueStart, input.Now)
	}
	if err := doneBase().Count(&result.DoneBookings).Error; err != nil {
		return result, err
	}
	if err := doneBase().Select("COALESCE(SUM(total_price), 0)").Scan(&result.Revenue).Error; err != nil {
		return result, err
	}
	if err := doneBase().Select("COALESCE(SUM(discount_amount), 0)").Scan(&result.DiscountGiven).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetBookingTrends 按天统计预约量与完成收入
func (r *GormDashboardRepository) GetBookingTrends(startAt, endAt time.Time) ([]DashboardBookingTrendRow, error) {
	var rows []DashboardBookingTrendRow
	dayExpr := "CAST(date(date_time) AS TEXT)"
	selectSQL := fmt.Sprintf(
		"%s as day, COUNT(*) as total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) as done, COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0) as revenue",
		dayExpr,
	)
	if err := r.db.Model(&models.Booking{}).
		Select(selectSQL, constants.BookingStatusDone, constants.BookingStatusDone).
		Where("date_time >= ? AND date_time < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
