package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrSlugExists        = errors.New("slug already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category in use")
	ErrCategoryInvalid   = errors.New("category invalid")
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceInactive   = errors.New("service inactive")
	ErrServiceInvalid    = errors.New("service invalid")
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionInvalid  = errors.New("promotion invalid")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInvalid    = errors.New("booking invalid")
	ErrStaffNotFound     = errors.New("staff not found")
	ErrStaffInvalid      = errors.New("staff invalid")
	ErrGalleryNotFound   = errors.New("gallery image not found")
	ErrGalleryInvalid    = errors.New("gallery image invalid")
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrFeedbackInvalid   = errors.New("feedback invalid")
	ErrContactNotFound   = errors.New("contact message not found")
	ErrContactInvalid    = errors.New("contact message invalid")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminInvalid       = errors.New("admin invalid")
	ErrRoleInvalid        = errors.New("role invalid")
)

// 活动校验细分错误，均可用 errors.Is(err, ErrPromotionInvalid) 归类
var (
	ErrPromotionTitleRequired       = fmt.Errorf("%w: title required", ErrPromotionInvalid)
	ErrPromotionTypeInvalid         = fmt.Errorf("%w: discount type", ErrPromotionInvalid)
	ErrPromotionValueInvalid        = fmt.Errorf("%w: value must be positive", ErrPromotionInvalid)
	ErrPromotionPercentInvalid      = fmt.Errorf("%w: percent above 100", ErrPromotionInvalid)
	ErrPromotionScopeInvalid        = fmt.Errorf("%w: scope", ErrPromotionInvalid)
	ErrPromotionScopeTargetNotFound = fmt.Errorf("%w: scope target not found", ErrPromotionInvalid)
	ErrPromotionWindowInvalid       = fmt.Errorf("%w: end before start", ErrPromotionInvalid)
)

// 预约与排班细分错误
var (
	ErrBookingTimeInvalid   = fmt.Errorf("%w: date time", ErrBookingInvalid)
	ErrBookingStatusInvalid = fmt.Errorf("%w: status", ErrBookingInvalid)
	ErrStaffServiceMismatch = fmt.Errorf("%w: staff does not offer service", ErrBookingInvalid)
	ErrAvailabilityInvalid  = errors.New("availability invalid")
	ErrGalleryCategory      = errors.New("gallery category invalid")
	ErrFeedbackRating       = fmt.Errorf("%w: rating", ErrFeedbackInvalid)
	ErrFeedbackStatus       = fmt.Errorf("%w: status", ErrFeedbackInvalid)
)
