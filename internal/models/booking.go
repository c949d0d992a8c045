package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking 预约记录，价格在下单时由定价引擎计算并固化
type Booking struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ServiceID      string    `gorm:"type:varchar(36);index;not null" json:"service_id"`
	StaffID        *string   `gorm:"type:varchar(36);index" json:"staff_id"`
	DateTime       time.Time `gorm:"index;not null" json:"date_time"`
	DurationMins   int       `gorm:"not null" json:"duration_mins"`
	Status         string    `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	CustomerEmail  string    `json:"customer_email"`
	OriginalPrice  Money     `gorm:"type:decimal(10,2);not null;default:0" json:"original_price"`
	DiscountAmount Money     `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	TotalPrice     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	PromotionID    *string   `gorm:"type:varchar(36);index" json:"promotion_id"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Service *Service `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID;references:ID" json:"staff,omitempty"`
}

// TableName 指定表名
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate 生成主键
func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = NewID()
	}
	return nil
}
