package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage 作品图库
type GalleryImage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`           // 主键
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`           // 图片地址
	Category  string    `gorm:"type:varchar(16);not null;index" json:"category"` // 分类（Nail/Eyelash/Facial/General）
	Caption   string    `json:"caption"`                                         // 说明
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`               // 排序权重
	CreatedAt time.Time `gorm:"index" json:"created_at"`                         // 创建时间
}

// TableName 指定表名
func (GalleryImage) TableName() string {
	return "gallery_images"
}

// BeforeCreate 生成主键
func (g *GalleryImage) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = NewID()
	}
	return nil
}
