package repository

import (
	"strings"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository 服务项目数据访问接口
type ServiceRepository interface {
	List(filter ServiceListFilter) ([]models.Service, int64, error)
	GetByID(id string, onlyActive bool) (*models.Service, error)
	GetBySlug(slug string, onlyActive bool) (*models.Service, error)
	ListByIDs(ids []string) ([]models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id string) error
	SlugTaken(slug, exceptID string) (bool, error)
}

type gormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &gormServiceRepository{db: db}
}

func (r *gormServiceRepository) scoped(onlyActive bool) *gorm.DB {
	if onlyActive {
		return r.db.Where("is_active = ?", true)
	}
	return r.db
}

// List 按创建顺序返回，total 为分页前的总数
func (r *gormServiceRepository) List(filter ServiceListFilter) ([]models.Service, int64, error) {
	query := r.scoped(filter.OnlyActive).Model(&models.Service{})
	if categoryID := strings.TrimSpace(filter.CategoryID); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query = applySearch(query, filter.Search, "name", "slug")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.WithCategory {
		query = query.Preload("Category")
	}

	services := make([]models.Service, 0)
	err := query.Scopes(paginate(filter.Page, filter.PageSize)).
		Order("created_at, id").
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *gormServiceRepository) GetByID(id string, onlyActive bool) (*models.Service, error) {
	return firstOrNil[models.Service](r.scoped(onlyActive).Preload("Category"), "id = ?", id)
}

func (r *gormServiceRepository) GetBySlug(slug string, onlyActive bool) (*models.Service, error) {
	return firstOrNil[models.Service](r.scoped(onlyActive).Preload("Category"), "slug = ?", slug)
}

// ListByIDs 不预加载分类，供定价批量查询
func (r *gormServiceRepository) ListByIDs(ids []string) ([]models.Service, error) {
	services := make([]models.Service, 0, len(ids))
	if len(ids) == 0 {
		return services, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&services).Error
	return services, err
}

func (r *gormServiceRepository) Create(service *models.Service) error {
	return r.db.Omit("Category").Create(service).Error
}

func (r *gormServiceRepository) Update(service *models.Service) error {
	return r.db.Omit("Category").Save(service).Error
}

func (r *gormServiceRepository) Delete(id string) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}

func (r *gormServiceRepository) SlugTaken(slug, exceptID string) (bool, error) {
	return slugTaken(r.db, &models.Service{}, slug, exceptID)
}
