package repository

import (
	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// ContactRepository 联系留言数据访问接口
type ContactRepository interface {
	List(filter ContactListFilter) ([]models.ContactMessage, int64, error)
	GetByID(id string) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	Update(message *models.ContactMessage) error
	Delete(id string) error
}

// GormContactRepository GORM 实现
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系留言仓库
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// List 留言列表，未处理优先
func (r *GormContactRepository) List(filter ContactListFilter) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	query := r.db.Model(&models.ContactMessage{})
	if filter.Handled != nil {
		query = query.Where("handled = ?", *filter.Handled)
	}
	query = applySearch(query, filter.Search, "name", "phone", "message")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("handled ASC, created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取留言
func (r *GormContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	return firstOrNil[models.ContactMessage](r.db, "id = ?", id)
}

// Create 创建留言
func (r *GormContactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// Update 更新留言
func (r *GormContactRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}

// Delete 删除留言
func (r *GormContactRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.ContactMessage{}).Error
}
