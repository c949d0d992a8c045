package repository

import (
	"strings"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// StaffRepository 技师数据访问接口
type StaffRepository interface {
	List(filter StaffListFilter) ([]models.Staff, int64, error)
	GetByID(id string) (*models.Staff, error)
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	Delete(id string) error
	ReplaceAvailability(staffID string, slots []models.StaffAvailability) error
	ReplaceServices(staffID string, serviceIDs []string) error
	HasService(staffID, serviceID string) (bool, error)
}

// GormStaffRepository GORM 实现
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository 创建技师仓库
func NewStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func preloadStaffRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		Preload("Services")
}

// List 技师列表
func (r *GormStaffRepository) List(filter StaffListFilter) ([]models.Staff, int64, error) {
	var staff []models.Staff
	query := r.db.Model(&models.Staff{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if serviceID := strings.TrimSpace(filter.ServiceID); serviceID != "" {
		query = query.Where("id IN (?)", r.db.Model(&models.StaffService{}).Select("staff_id").Where("service_id = ?", serviceID))
	}
	query = applySearch(query, filter.Search, "name", "position")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := preloadStaffRelations(query).Order("name ASC, id ASC").Find(&staff).Error; err != nil {
		return nil, 0, err
	}
	return staff, total, nil
}

// GetByID 根据 ID 获取技师
func (r *GormStaffRepository) GetByID(id string) (*models.Staff, error) {
	return firstOrNil[models.Staff](preloadStaffRelations(r.db), "id = ?", id)
}

// Create 创建技师
func (r *GormStaffRepository) Create(staff *models.Staff) error {
	return r.db.Omit("Availability", "Services").Create(staff).Error
}

// Update 更新技师基本信息
func (r *GormStaffRepository) Update(staff *models.Staff) error {
	return r.db.Omit("Availability", "Services").Save(staff).Error
}

// Delete 删除技师及其排班、服务关联
func (r *GormStaffRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", id).Delete(&models.StaffAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_id = ?", id).Delete(&models.StaffService{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Staff{}).Error
	})
}

// ReplaceAvailability 整体替换排班
func (r *GormStaffRepository) ReplaceAvailability(staffID string, slots []models.StaffAvailability) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.StaffAvailability{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		for i := range slots {
			slots[i].ID = ""
			slots[i].StaffID = staffID
		}
		return tx.Create(&slots).Error
	})
}

// ReplaceServices 整体替换可提供的服务
func (r *GormStaffRepository) ReplaceServices(staffID string, serviceIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.StaffService{}).Error; err != nil {
			return err
		}
		if len(serviceIDs) == 0 {
			return nil
		}
		rows := make([]models.StaffService, 0, len(serviceIDs))
		for _, serviceID := range serviceIDs {
			rows = append(rows, models.StaffService{StaffID: staffID, ServiceID: serviceID})
		}
		return tx.Create(&rows).Error
	})
}

// HasService 判断技师是否提供某服务
func (r *GormStaffRepository) HasService(staffID, serviceID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.StaffService{}).
		Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
