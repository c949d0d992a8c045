package repository

import (
	"time"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 后台账号存取
type AdminRepository interface {
	GetByID(id uint) (*models.Admin, error)
	GetByUsername(username string) (*models.Admin, error)
	List() ([]models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	TouchLogin(id uint, at time.Time) error
}

type gormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建账号仓库
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &gormAdminRepository{db: db}
}

func (r *gormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	return firstOrNil[models.Admin](r.db, id)
}

func (r *gormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	return firstOrNil[models.Admin](r.db.Where("username = ?", username))
}

// List 按创建顺序返回全部账号
func (r *gormAdminRepository) List() ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	err := r.db.Order("id ASC").Find(&admins).Error
	return admins, err
}

func (r *gormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *gormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// TouchLogin 只更新最后登录时间，不触碰令牌状态
func (r *gormAdminRepository) TouchLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}
