package models

import (
	"time"

	"gorm.io/gorm"
)

// Promotion 限时活动折扣规则
type Promotion struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`          // 主键
	Title        string         `gorm:"not null" json:"title"`                          // 标题
	Description  string         `gorm:"type:text" json:"description"`                   // 描述
	DiscountType string         `gorm:"type:varchar(16);not null" json:"discount_type"` // 折扣类型（PERCENT/AMOUNT）
	Value        Money          `gorm:"type:decimal(10,2);not null" json:"value"`       // 数值（百分比或固定金额）
	ScopeType    string         `gorm:"type:varchar(16);not null" json:"scope_type"`    // 适用范围（GLOBAL/CATEGORY/SERVICE）
	ScopeID      *string        `gorm:"type:varchar(36);index" json:"scope_id"`         // 关联分类或服务 ID
	StartAt      time.Time      `gorm:"index;not null" json:"start_at"`                 // 生效时间
	EndAt        time.Time      `gorm:"index;not null" json:"end_at"`                   // 失效时间
	IsActive     bool           `gorm:"not null;index" json:"is_active"`                // 是否启用
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                     // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
}

// TableName 指定表名
func (Promotion) TableName() string {
	return "promotions"
}

// BeforeCreate 生成主键
func (p *Promotion) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// ScopeRef 返回范围 ID 原值，未设置时为空串
func (p Promotion) ScopeRef() string {
	if p.ScopeID == nil {
		return ""
	}
	return *p.ScopeID
}
