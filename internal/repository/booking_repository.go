package repository

import (
	"strings"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// BookingRepository 预约数据访问接口
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	List(filter BookingListFilter) ([]models.Booking, int64, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	Delete(id string) error
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func withBookingRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Service.Category").Preload("Staff")
}

// GetByID 附带服务（含分类）与技师
func (r *gormBookingRepository) GetByID(id string) (*models.Booking, error) {
	return firstOrNil[models.Booking](r.db.Scopes(withBookingRefs), "id = ?", id)
}

// List 预约时间倒序；DateFrom/DateTo 均为闭区间
func (r *gormBookingRepository) List(filter BookingListFilter) ([]models.Booking, int64, error) {
	query := r.db.Model(&models.Booking{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceID := strings.TrimSpace(filter.ServiceID); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}
	if staffID := strings.TrimSpace(filter.StaffID); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date_time >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date_time <= ?", *filter.DateTo)
	}
	query = applySearch(query, filter.Search, "customer_name", "customer_phone", "customer_email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	bookings := make([]models.Booking, 0)
	err := query.Scopes(withBookingRefs, paginate(filter.Page, filter.PageSize)).
		Order("date_time DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *gormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Omit("Service", "Staff").Create(booking).Error
}

func (r *gormBookingRepository) Update(booking *models.Booking) error {
	return r.db.Omit("Service", "Staff").Save(booking).Error
}

func (r *gormBookingRepository) Delete(id string) error {
	return r.db.Delete(&models.Booking{}, "id = ?", id).Error
}
