package repository

import (
	"strings"
	"time"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// PromotionRepository 活动数据访问接口
type PromotionRepository interface {
	GetByID(id string) (*models.Promotion, error)
	ListActive(now time.Time) ([]models.Promotion, error)
	Create(promotion *models.Promotion) error
	Update(promotion *models.Promotion) error
	Delete(id string) error
	List(filter PromotionListFilter) ([]models.Promotion, int64, error)
}

type gormPromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &gormPromotionRepository{db: db}
}

// liveAt 启用且 now 落在 [start_at, end_at] 内
func liveAt(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ? AND start_at <= ? AND end_at >= ?", true, now, now)
	}
}

func (r *gormPromotionRepository) GetByID(id string) (*models.Promotion, error) {
	return firstOrNil[models.Promotion](r.db, "id = ?", id)
}

// ListActive 顺序固定为创建先后，定价引擎平手时取靠前者
func (r *gormPromotionRepository) ListActive(now time.Time) ([]models.Promotion, error) {
	promotions := make([]models.Promotion, 0)
	err := r.db.Scopes(liveAt(now)).Order("created_at, id").Find(&promotions).Error
	return promotions, err
}

func (r *gormPromotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *gormPromotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Save(promotion).Error
}

func (r *gormPromotionRepository) Delete(id string) error {
	return r.db.Delete(&models.Promotion{}, "id = ?", id).Error
}

// List 后台列表，最新创建的在前
func (r *gormPromotionRepository) List(filter PromotionListFilter) ([]models.Promotion, int64, error) {
	query := r.db.Model(&models.Promotion{})
	if scopeType := strings.TrimSpace(filter.ScopeType); scopeType != "" {
		query = query.Where("scope_type = ?", scopeType)
	}
	if discountType := strings.TrimSpace(filter.DiscountType); discountType != "" {
		query = query.Where("discount_type = ?", discountType)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = applySearch(query, filter.Search, "title")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	promotions := make([]models.Promotion, 0)
	err := query.Scopes(paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC, id DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, 0, err
	}
	return promotions, total, nil
}
