package repository

import (
	"strings"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository 图库数据访问接口
type GalleryRepository interface {
	List(filter GalleryListFilter) ([]models.GalleryImage, int64, error)
	GetByID(id string) (*models.GalleryImage, error)
	Create(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	Delete(id string) error
}

// GormGalleryRepository GORM 实现
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository 创建图库仓库
func NewGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// List 图库列表
func (r *GormGalleryRepository) List(filter GalleryListFilter) ([]models.GalleryImage, int64, error) {
	var images []models.GalleryImage
	query := r.db.Model(&models.GalleryImage{})
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("sort_order DESC, created_at DESC").Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// GetByID 根据 ID 获取图片
func (r *GormGalleryRepository) GetByID(id string) (*models.GalleryImage, error) {
	return firstOrNil[models.GalleryImage](r.db, "id = ?", id)
}

// Create 创建图片
func (r *GormGalleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// Update 更新图片
func (r *GormGalleryRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

// Delete 删除图片
func (r *GormGalleryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.GalleryImage{}).Error
}
