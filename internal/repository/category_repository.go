package repository

import (
	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 服务分类数据访问接口
type CategoryRepository interface {
	List() ([]models.ServiceCategory, error)
	GetByID(id string) (*models.ServiceCategory, error)
	Create(category *models.ServiceCategory) error
	Update(category *models.ServiceCategory) error
	Delete(id string) error
	SlugTaken(slug, exceptID string) (bool, error)
	HasServices(categoryID string) (bool, error)
}

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

// List 排序值大的在前，同值按名称
func (r *gormCategoryRepository) List() ([]models.ServiceCategory, error) {
	categories := make([]models.ServiceCategory, 0)
	err := r.db.Order("sort_order DESC").Order("name").Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) GetByID(id string) (*models.ServiceCategory, error) {
	return firstOrNil[models.ServiceCategory](r.db, "id = ?", id)
}

func (r *gormCategoryRepository) Create(category *models.ServiceCategory) error {
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) Update(category *models.ServiceCategory) error {
	return r.db.Save(category).Error
}

func (r *gormCategoryRepository) Delete(id string) error {
	return r.db.Delete(&models.ServiceCategory{}, "id = ?", id).Error
}

func (r *gormCategoryRepository) SlugTaken(slug, exceptID string) (bool, error) {
	return slugTaken(r.db, &models.ServiceCategory{}, slug, exceptID)
}

// HasServices 分类下是否还挂着服务项目（含已下架）
func (r *gormCategoryRepository) HasServices(categoryID string) (bool, error) {
	var n int64
	err := r.db.Model(&models.Service{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n > 0, err
}
