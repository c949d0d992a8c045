package models

import "time"

// AdminAuditLog 后台账号与权限变更审计
type AdminAuditLog struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	OperatorAdminID uint        `gorm:"index;not null" json:"operator_admin_id"`
	TargetAdminID   *uint       `gorm:"index" json:"target_admin_id,omitempty"`
	TargetUsername  string      `gorm:"type:varchar(100);not null;default:''" json:"target_username"`
	Action          string      `gorm:"type:varchar(64);index;not null" json:"action"`
	Roles           StringArray `gorm:"type:json" json:"roles"`
	RequestID       string      `gorm:"type:varchar(64);index;not null;default:''" json:"request_id"`
	CreatedAt       time.Time   `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
