package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff 技师
type Staff struct {
	ID              string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Position        string         `json:"position"`
	Bio             string         `gorm:"type:text" json:"bio"`
	ProfileImageURL string         `json:"profile_image_url"`
	Skills          StringArray    `gorm:"type:json" json:"skills"`
	ExperienceYears int            `gorm:"not null;default:0" json:"experience_years"`
	IsActive        bool           `gorm:"not null;index" json:"is_active"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Availability []StaffAvailability `gorm:"foreignKey:StaffID;references:ID" json:"availability,omitempty"`
	Services     []StaffService      `gorm:"foreignKey:StaffID;references:ID" json:"services,omitempty"`
}

// TableName 指定表名
func (Staff) TableName() string {
	return "staff"
}

// BeforeCreate 生成主键
func (s *Staff) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

// StaffAvailability 技师每周排班时段
type StaffAvailability struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StaffID   string    `gorm:"type:varchar(36);index;not null" json:"staff_id"`
	DayOfWeek string    `gorm:"type:varchar(16);not null" json:"day_of_week"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (StaffAvailability) TableName() string {
	return "staff_availability"
}

// BeforeCreate 生成主键
func (a *StaffAvailability) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// StaffService 技师可提供的服务
type StaffService struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StaffID   string    `gorm:"type:varchar(36);uniqueIndex:idx_staff_service;not null" json:"staff_id"`
	ServiceID string    `gorm:"type:varchar(36);uniqueIndex:idx_staff_service;not null" json:"service_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (StaffService) TableName() string {
	return "staff_services"
}

// BeforeCreate 生成主键
func (s *StaffService) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
