package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceCategory 服务分类（美甲、睫毛、面部护理等）
type ServiceCategory struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"` // 主键
	Name      string         `gorm:"not null" json:"name"`                  // 名称
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`      // 唯一标识
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`     // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (ServiceCategory) TableName() string {
	return "service_categories"
}

// BeforeCreate 生成主键
func (c *ServiceCategory) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
