package shared

import (
	"github.com/salon-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入 gin.Context 的键
const (
	ContextKeyAdminID   = "admin_id"
	ContextKeyRequestID = "request_id"
)

// RequireAdminID 取出当前管理员 ID，缺失时直接返回未登录
func RequireAdminID(c *gin.Context) (uint, bool) {
	id, ok := c.Get(ContextKeyAdminID)
	if !ok {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	adminID, ok := id.(uint)
	if !ok || adminID == 0 {
		RespondError(c, response.CodeInternal, "error.internal", nil)
		return 0, false
	}
	return adminID, true
}

// OptionalAdminID 未登录时返回 0
func OptionalAdminID(c *gin.Context) uint {
	id, _ := c.Get(ContextKeyAdminID)
	adminID, _ := id.(uint)
	return adminID
}
