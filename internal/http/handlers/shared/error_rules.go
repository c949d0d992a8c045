package shared

import (
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/service"
)

// 各业务模块的错误映射规则，细分错误需排在其归类错误之前。
var (
	CategoryErrorRules = []MappedError{
		{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
		{Target: service.ErrCategoryInUse, Code: response.CodeConflict, Key: "error.category_in_use"},
		{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
		{Target: service.ErrCategoryInvalid, Code: response.CodeBadRequest, Key: "error.category_invalid"},
	}

	ServiceErrorRules = []MappedError{
		{Target: service.ErrServiceNotFound, Code: response.CodeNotFound, Key: "error.service_not_found"},
		{Target: service.ErrServiceInactive, Code: response.CodeBadRequest, Key: "error.service_inactive"},
		{Target: service.ErrServiceInvalid, Code: response.CodeBadRequest, Key: "error.service_invalid"},
		{Target: service.ErrCategoryNotFound, Code: response.CodeBadRequest, Key: "error.category_not_found"},
		{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
	}

	PromotionErrorRules = []MappedError{
		{Target: service.ErrPromotionNotFound, Code: response.CodeNotFound, Key: "error.promotion_not_found"},
		{Target: service.ErrPromotionTitleRequired, Code: response.CodeBadRequest, Key: "error.promotion_title_required"},
		{Target: service.ErrPromotionTypeInvalid, Code: response.CodeBadRequest, Key: "error.promotion_type_invalid"},
		{Target: service.ErrPromotionValueInvalid, Code: response.CodeBadRequest, Key: "error.promotion_value_invalid"},
		{Target: service.ErrPromotionPercentInvalid, Code: response.CodeBadRequest, Key: "error.promotion_percent_invalid"},
		{Target: service.ErrPromotionScopeTargetNotFound, Code: response.CodeBadRequest, Key: "error.promotion_scope_target_not_found"},
		{Target: service.ErrPromotionScopeInvalid, Code: response.CodeBadRequest, Key: "error.promotion_scope_invalid"},
		{Target: service.ErrPromotionWindowInvalid, Code: response.CodeBadRequest, Key: "error.promotion_window_invalid"},
		{Target: service.ErrPromotionInvalid, Code: response.CodeBadRequest, Key: "error.bad_request"},
	}

	BookingErrorRules = []MappedError{
		{Target: service.ErrBookingNotFound, Code: response.CodeNotFound, Key: "error.booking_not_found"},
		{Target: service.ErrBookingTimeInvalid, Code: response.CodeBadRequest, Key: "error.booking_time_invalid"},
		{Target: service.ErrBookingStatusInvalid, Code: response.CodeBadRequest, Key: "error.booking_status_invalid"},
		{Target: service.ErrStaffServiceMismatch, Code: response.CodeBadRequest, Key: "error.staff_service_mismatch"},
		{Target: service.ErrBookingInvalid, Code: response.CodeBadRequest, Key: "error.booking_invalid"},
		{Target: service.ErrServiceNotFound, Code: response.CodeNotFound, Key: "error.service_not_found"},
		{Target: service.ErrServiceInactive, Code: response.CodeBadRequest, Key: "error.service_inactive"},
		{Target: service.ErrStaffNotFound, Code: response.CodeBadRequest, Key: "error.staff_not_found"},
	}

	StaffErrorRules = []MappedError{
		{Target: service.ErrStaffNotFound, Code: response.CodeNotFound, Key: "error.staff_not_found"},
		{Target: service.ErrStaffInvalid, Code: response.CodeBadRequest, Key: "error.staff_invalid"},
		{Target: service.ErrAvailabilityInvalid, Code: response.CodeBadRequest, Key: "error.availability_invalid"},
		{Target: service.ErrServiceNotFound, Code: response.CodeBadRequest, Key: "error.service_not_found"},
	}

	GalleryErrorRules = []MappedError{
		{Target: service.ErrGalleryNotFound, Code: response.CodeNotFound, Key: "error.gallery_not_found"},
		{Target: service.ErrGalleryCategory, Code: response.CodeBadRequest, Key: "error.gallery_category_invalid"},
		{Target: service.ErrGalleryInvalid, Code: response.CodeBadRequest, Key: "error.gallery_invalid"},
	}

	FeedbackErrorRules = []MappedError{
		{Target: service.ErrFeedbackNotFound, Code: response.CodeNotFound, Key: "error.feedback_not_found"},
		{Target: service.ErrFeedbackRating, Code: response.CodeBadRequest, Key: "error.feedback_rating_invalid"},
		{Target: service.ErrFeedbackStatus, Code: response.CodeBadRequest, Key: "error.feedback_status_invalid"},
		{Target: service.ErrFeedbackInvalid, Code: response.CodeBadRequest, Key: "error.feedback_invalid"},
	}

	ContactErrorRules = []MappedError{
		{Target: service.ErrContactNotFound, Code: response.CodeNotFound, Key: "error.contact_not_found"},
		{Target: service.ErrContactInvalid, Code: response.CodeBadRequest, Key: "error.contact_invalid"},
	}

	AdminErrorRules = []MappedError{
		{Target: service.ErrAdminNotFound, Code: response.CodeNotFound, Key: "error.admin_not_found"},
		{Target: service.ErrAdminExists, Code: response.CodeConflict, Key: "error.admin_exists"},
		{Target: service.ErrAdminInvalid, Code: response.CodeBadRequest, Key: "error.admin_invalid"},
		{Target: service.ErrRoleInvalid, Code: response.CodeBadRequest, Key: "error.role_invalid"},
		{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.password_mismatch"},
		{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.login_failed"},
	}
)
