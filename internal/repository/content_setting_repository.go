package repository

import (
	"errors"

	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

// ContentSettingRepository 站点内容设置数据访问接口
type ContentSettingRepository interface {
	Get() (*models.ContentSetting, error)
	Upsert(setting *models.ContentSetting) (*models.ContentSetting, error)
}

// GormContentSettingRepository GORM 实现
type GormContentSettingRepository struct {
	db *gorm.DB
}

// NewContentSettingRepository 创建内容设置仓库
func NewContentSettingRepository(db *gorm.DB) *GormContentSettingRepository {
	return &GormContentSettingRepository{db: db}
}

// Get 获取唯一的设置行，不存在返回 nil
func (r *GormContentSettingRepository) Get() (*models.ContentSetting, error) {
	return firstOrNil[models.ContentSetting](r.db, "id = ?", models.ContentSettingSingletonID)
}

// Upsert 更新或创建设置
func (r *GormContentSettingRepository) Upsert(setting *models.ContentSetting) (*models.ContentSetting, error) {
	if setting == nil {
		return nil, errors.New("content setting is nil")
	}
	setting.ID = models.ContentSettingSingletonID
	existing, err := r.Get()
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := r.db.Create(setting).Error; err != nil {
			return nil, err
		}
		return setting, nil
	}
	if err := r.db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
