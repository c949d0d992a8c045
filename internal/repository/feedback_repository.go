package repository

import (
	"strings"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository 评价数据访问接口
type FeedbackRepository interface {
	List(filter FeedbackListFilter) ([]models.Feedback, int64, error)
	GetByID(id string) (*models.Feedback, error)
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	Delete(id string) error
}

// GormFeedbackRepository GORM 实现
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓库
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// List 评价列表，精选优先
func (r *GormFeedbackRepository) List(filter FeedbackListFilter) ([]models.Feedback, int64, error) {
	var feedback []models.Feedback
	query := r.db.Model(&models.Feedback{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("is_featured DESC, created_at DESC").Find(&feedback).Error; err != nil {
		return nil, 0, err
	}
	return feedback, total, nil
}

// GetByID 根据 ID 获取评价
func (r *GormFeedbackRepository) GetByID(id string) (*models.Feedback, error) {
	return firstOrNil[models.Feedback](r.db, "id = ?", id)
}

// Create 创建评价
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// Update 更新评价
func (r *GormFeedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// Delete 删除评价
func (r *GormFeedbackRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Feedback{}).Error
}
