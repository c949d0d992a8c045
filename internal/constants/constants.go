package constants

// 折扣类型常量
const (
	DiscountTypePercent = "PERCENT"
	DiscountTypeAmount  = "AMOUNT"
)

// 活动适用范围常量
const (
	ScopeTypeGlobal   = "GLOBAL"
	ScopeTypeCategory = "CATEGORY"
	ScopeTypeService  = "SERVICE"
)

// 预约状态常量
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusDone      = "DONE"
)

// 评价审核状态常量
const (
	FeedbackStatusPending  = "PENDING"
	FeedbackStatusApproved = "APPROVED"
	FeedbackStatusRejected = "REJECTED"
)

// 图库分类常量
const (
	GalleryCategoryNail    = "Nail"
	GalleryCategoryEyelash = "Eyelash"
	GalleryCategoryFacial  = "Facial"
	GalleryCategoryGeneral = "General"
)

// 星期常量
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskBookingConfirmationEmail = "booking:confirmation_email"
	TaskBookingStatusNotify      = "booking:status_notify"
	TaskBookingReminder          = "booking:reminder"
)

// 缓存 key
const (
	CacheKeyActivePromotions = "promotions:active"
	// CacheKeyAdminSessionPrefix 管理员令牌状态，后接管理员 ID
	CacheKeyAdminSessionPrefix = "admin:session:"
	// CacheKeyContentSettings 前台内容设置缓存
	CacheKeyContentSettings = "public:content_settings"
)

// 评分范围
const (
	FeedbackRatingMin = 1
	FeedbackRatingMax = 5
)

// 后台审计动作
const (
	AuditActionAdminCreate = "admin_create"
	AuditActionRolesSet    = "admin_roles_set"
)
