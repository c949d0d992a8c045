package models

import (
	"time"

	"gorm.io/gorm"
)

// Feedback 客户评价
type Feedback struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Rating       int         `gorm:"not null" json:"rating"`
	Title        string      `json:"title"`
	Comment      string      `gorm:"type:text" json:"comment"`
	ImageURLs    StringArray `gorm:"type:json" json:"image_urls"`
	Status       string      `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"`
	IsFeatured   bool        `gorm:"not null;default:false" json:"is_featured"`
	CustomerName string      `json:"customer_name"`
	CreatedAt    time.Time   `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Feedback) TableName() string {
	return "feedback"
}

// BeforeCreate 生成主键
func (f *Feedback) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = NewID()
	}
	return nil
}
