package i18n

var viMessages = map[string]string{
	"error.bad_request":                      "Yêu cầu không hợp lệ",
	"error.unauthorized":                     "Chưa đăng nhập hoặc phiên đã hết hạn",
	"error.forbidden":                        "Không có quyền thực hiện thao tác này",
	"error.not_found":                        "Không tìm thấy dữ liệu",
	"error.internal":                         "Lỗi hệ thống, vui lòng thử lại sau",
	"error.too_many_requests":                "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
	"error.login_failed":                     "Tên đăng nhập hoặc mật khẩu không đúng",
	"error.login_too_many":                   "Đăng nhập sai quá nhiều lần, vui lòng thử lại sau %d giây",
	"error.token_invalid":                    "Phiên đăng nhập không hợp lệ",
	"error.token_expired":                    "Phiên đăng nhập đã hết hạn",
	"error.password_weak":                    "Mật khẩu phải có ít nhất %d ký tự",
	"error.password_mismatch":                "Mật khẩu cũ không đúng",
	"error.id_invalid":                       "Mã định danh không hợp lệ",
	"error.slug_exists":                      "Đường dẫn (slug) đã tồn tại",
	"error.category_not_found":               "Không tìm thấy danh mục",
	"error.category_in_use":                  "Danh mục vẫn còn dịch vụ, không thể xoá",
	"error.category_invalid":                 "Thông tin danh mục không hợp lệ",
	"error.service_not_found":                "Không tìm thấy dịch vụ",
	"error.service_inactive":                 "Dịch vụ hiện không nhận đặt lịch",
	"error.service_invalid":                  "Thông tin dịch vụ không hợp lệ",
	"error.promotion_not_found":              "Không tìm thấy khuyến mãi",
	"error.promotion_title_required":         "Vui lòng nhập tiêu đề khuyến mãi",
	"error.promotion_type_invalid":           "Loại giảm giá không hợp lệ",
	"error.promotion_value_invalid":          "Giá trị giảm phải lớn hơn 0",
	"error.promotion_percent_invalid":        "Phần trăm giảm không được vượt quá 100",
	"error.promotion_scope_invalid":          "Phạm vi áp dụng không hợp lệ",
	"error.promotion_scope_target_not_found": "Không tìm thấy danh mục hoặc dịch vụ được áp dụng",
	"error.promotion_window_invalid":         "Thời gian kết thúc phải sau thời gian bắt đầu",
	"error.booking_not_found":                "Không tìm thấy lịch hẹn",
	"error.booking_invalid":                  "Thông tin đặt lịch không hợp lệ",
	"error.booking_time_invalid":             "Thời gian đặt lịch phải ở tương lai",
	"error.booking_status_invalid":           "Trạng thái lịch hẹn không hợp lệ",
	"error.staff_not_found":                  "Không tìm thấy nhân viên",
	"error.staff_service_mismatch":           "Nhân viên không thực hiện dịch vụ này",
	"error.availability_invalid":             "Lịch làm việc không hợp lệ",
	"error.gallery_not_found":                "Không tìm thấy hình ảnh",
	"error.gallery_category_invalid":         "Danh mục hình ảnh không hợp lệ",
	"error.feedback_not_found":               "Không tìm thấy đánh giá",
	"error.feedback_rating_invalid":          "Điểm đánh giá phải từ 1 đến 5",
	"error.feedback_status_invalid":          "Trạng thái đánh giá không hợp lệ",
	"error.contact_not_found":                "Không tìm thấy tin nhắn liên hệ",
	"error.admin_not_found":                  "Không tìm thấy quản trị viên",
	"error.admin_exists":                     "Tên đăng nhập đã tồn tại",
	"error.password_min_length":              "Mật khẩu phải có ít nhất %d ký tự",
	"error.password_require_upper":           "Mật khẩu phải có ít nhất một chữ hoa",
	"error.password_require_lower":           "Mật khẩu phải có ít nhất một chữ thường",
	"error.password_require_number":          "Mật khẩu phải có ít nhất một chữ số",
	"error.staff_invalid":                    "Thông tin nhân viên không hợp lệ",
	"error.gallery_invalid":                  "Thông tin hình ảnh không hợp lệ",
	"error.feedback_invalid":                 "Nội dung đánh giá không hợp lệ",
	"error.contact_invalid":                  "Vui lòng nhập họ tên và nội dung",
	"error.admin_invalid":                    "Thông tin tài khoản không hợp lệ",
	"error.role_invalid":                     "Vai trò không hợp lệ",
	"error.auth_header_missing":              "Thiếu thông tin xác thực",
	"error.auth_header_invalid":              "Định dạng xác thực không hợp lệ",
	"error.token_revoked":                    "Phiên đăng nhập đã bị thu hồi, vui lòng đăng nhập lại",
	"notify.booking_confirmation.subject":    "Xác nhận đặt lịch",
	"notify.booking_confirmation.body":       "Chào %s, lịch hẹn %s lúc %s đã được ghi nhận. Tổng thanh toán: %s.",
	"notify.booking_status.subject":          "Cập nhật lịch hẹn",
	"notify.booking_status.body":             "Chào %s, lịch hẹn %s đã chuyển sang trạng thái %s.",
	"notify.booking_reminder.body":           "Chào %s, nhắc bạn lịch hẹn %s lúc %s.",
}

var enMessages = map[string]string{
	"error.bad_request":                      "Invalid request",
	"error.unauthorized":                     "Not signed in or session expired",
	"error.forbidden":                        "You are not allowed to perform this action",
	"error.not_found":                        "Resource not found",
	"error.internal":                         "Internal error, please try again later",
	"error.too_many_requests":                "Too many requests, retry in %d seconds",
	"error.login_failed":                     "Invalid username or password",
	"error.login_too_many":                   "Too many failed logins, retry in %d seconds",
	"error.token_invalid":                    "Invalid session token",
	"error.token_expired":                    "Session token expired",
	"error.password_weak":                    "Password must be at least %d characters",
	"error.password_mismatch":                "Old password is incorrect",
	"error.id_invalid":                       "Invalid identifier",
	"error.slug_exists":                      "Slug already exists",
	"error.category_not_found":               "Category not found",
	"error.category_in_use":                  "Category still has services and cannot be deleted",
	"error.category_invalid":                 "Invalid category data",
	"error.service_not_found":                "Service not found",
	"error.service_inactive":                 "Service is not open for booking",
	"error.service_invalid":                  "Invalid service data",
	"error.promotion_not_found":              "Promotion not found",
	"error.promotion_title_required":         "Promotion title is required",
	"error.promotion_type_invalid":           "Invalid discount type",
	"error.promotion_value_invalid":          "Discount value must be greater than 0",
	"error.promotion_percent_invalid":        "Percent discount cannot exceed 100",
	"error.promotion_scope_invalid":          "Invalid promotion scope",
	"error.promotion_scope_target_not_found": "Scoped category or service not found",
	"error.promotion_window_invalid":         "End time must not be before start time",
	"error.booking_not_found":                "Booking not found",
	"error.booking_invalid":                  "Invalid booking data",
	"error.booking_time_invalid":             "Booking time must be in the future",
	"error.booking_status_invalid":           "Invalid booking status",
	"error.staff_not_found":                  "Staff member not found",
	"error.staff_service_mismatch":           "Staff member does not perform this service",
	"error.availability_invalid":             "Invalid availability slot",
	"error.gallery_not_found":                "Image not found",
	"error.gallery_category_invalid":         "Invalid gallery category",
	"error.feedback_not_found":               "Feedback not found",
	"error.feedback_rating_invalid":          "Rating must be between 1 and 5",
	"error.feedback_status_invalid":          "Invalid feedback status",
	"error.contact_not_found":                "Contact message not found",
	"error.admin_not_found":                  "Admin not found",
	"error.admin_exists":                     "Username already exists",
	"error.password_min_length":              "Password must be at least %d characters",
	"error.password_require_upper":           "Password must contain an uppercase letter",
	"error.password_require_lower":           "Password must contain a lowercase letter",
	"error.password_require_number":          "Password must contain a digit",
	"error.staff_invalid":                    "Invalid staff details",
	"error.gallery_invalid":                  "Invalid image details",
	"error.feedback_invalid":                 "Invalid feedback",
	"error.contact_invalid":                  "Name and message are required",
	"error.admin_invalid":                    "Invalid account details",
	"error.role_invalid":                     "Invalid role",
	"error.auth_header_missing":              "Missing authorization header",
	"error.auth_header_invalid":              "Malformed authorization header",
	"error.token_revoked":                    "Session revoked, please sign in again",
	"notify.booking_confirmation.subject":    "Booking confirmed",
	"notify.booking_confirmation.body":       "Hi %s, your %s appointment at %s is received. Total: %s.",
	"notify.booking_status.subject":          "Booking update",
	"notify.booking_status.body":             "Hi %s, your %s appointment is now %s.",
	"notify.booking_reminder.body":           "Hi %s, a reminder for your %s appointment at %s.",
}
