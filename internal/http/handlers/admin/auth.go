package admin

import (
	"errors"
	"time"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

type passwordChange struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// accountView 登录与 /me 返回的账号摘要，不含密码哈希等内部字段
type accountView struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	IsSuper     bool       `json:"is_super"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func viewOf(admin *models.Admin) accountView {
	return accountView{
		ID:          admin.ID,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		IsSuper:     admin.IsSuper,
		LastLoginAt: admin.LastLoginAt,
	}
}

// Login 签发管理员令牌
func (h *Handler) Login(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(c.Request.Context(), in.Username, in.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		requestLog(c).Warnw("admin_login_failed", "username", in.Username, "ip", c.ClientIP())
		respondError(c, response.CodeUnauthorized, "error.login_failed", nil)
		return
	case err != nil:
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	requestLog(c).Infow("admin_login_success", "admin_id", admin.ID, "ip", c.ClientIP())
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"admin":      viewOf(admin),
	})
}

// Me 当前账号、角色与展开后的权限
func (h *Handler) Me(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.GetAdmin(adminID)
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules)
		return
	}

	out := gin.H{"admin": viewOf(admin)}
	if out["roles"], err = h.AdminService.Roles(admin.ID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if out["policies"], err = h.AdminService.Policies(admin.ID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, out)
}

// ChangePassword 修改密码后旧令牌全部失效
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var in passwordChange
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthService.ChangePassword(c.Request.Context(), adminID, in.OldPassword, in.NewPassword); err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules)
		return
	}
	requestLog(c).Infow("admin_password_changed", "admin_id", adminID)
	response.Success(c, gin.H{"updated": true})
}
