package repository

import "time"

// ServiceListFilter 查询服务项目列表的过滤条件
type ServiceListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// PromotionListFilter 查询活动列表的过滤条件
type PromotionListFilter struct {
	Page         int
	PageSize     int
	Search       string
	ScopeType    string
	DiscountType string
	IsActive     *bool
}

// BookingListFilter 查询预约列表的过滤条件
type BookingListFilter struct {
	Page      int
	PageSize  int
	Status    string
	ServiceID string
	StaffID   string
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// StaffListFilter 查询技师列表的过滤条件
type StaffListFilter struct {
	Page       int
	PageSize   int
	Search     string
	ServiceID  string
	OnlyActive bool
}

// GalleryListFilter 查询图库列表的过滤条件
type GalleryListFilter struct {
	Page     int
	PageSize int
	Category string
}

// FeedbackListFilter 查询评价列表的过滤条件
type FeedbackListFilter struct {
	Page         int
	PageSize     int
	Status       string
	OnlyFeatured bool
}

// ContactListFilter 查询联系留言列表的过滤条件
type ContactListFilter struct {
	Page     int
	PageSize int
	Search   string
	Handled  *bool
}

// AdminAuditLogListFilter 查询后台审计日志的过滤条件
type AdminAuditLogListFilter struct {
	Page            int
	PageSize        int
	OperatorAdminID uint
	TargetAdminID   uint
	Action          string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}
