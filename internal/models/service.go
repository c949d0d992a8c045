package models

import (
	"time"

	"gorm.io/gorm"
)

// Service 可预约的服务项目
type Service struct {
	ID           string           `gorm:"primaryKey;type:varchar(36)" json:"id"`              // 主键
	CategoryID   string           `gorm:"type:varchar(36);index;not null" json:"category_id"` // 所属分类
	Name         string           `gorm:"not null" json:"name"`                               // 名称
	Slug         string           `gorm:"uniqueIndex;not null" json:"slug"`                   // 唯一标识
	Description  string           `gorm:"type:text" json:"description"`                       // 描述
	BasePrice    Money            `gorm:"type:decimal(10,2);not null" json:"base_price"`      // 原价
	DurationMins int              `gorm:"not null" json:"duration_mins"`                      // 时长（分钟）
	IsActive     bool             `gorm:"not null;index" json:"is_active"`                    // 是否上架
	CreatedAt    time.Time        `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt    time.Time        `json:"updated_at"`                                         // 更新时间
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`                                     // 软删除时间
	Category     *ServiceCategory `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

// TableName 指定表名
func (Service) TableName() string {
	return "services"
}

// BeforeCreate 生成主键
func (s *Service) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
