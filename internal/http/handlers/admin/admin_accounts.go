package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAdminRequest 创建后台账号请求
type CreateAdminRequest struct {
	Username    string   `json:"username" binding:"required"`
	DisplayName string   `json:"display_name"`
	Password    string   `json:"password" binding:"required"`
	IsSuper     bool     `json:"is_super"`
	Roles       []string `json:"roles"`
}

// SetAdminRolesRequest 设置账号角色请求
type SetAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// ListAdmins 后台账号列表
func (h *Handler) ListAdmins(c *gin.Context) {
	accounts, err := h.AdminService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, accounts)
}

// CreateAdmin 创建后台账号
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	account, err := h.AdminService.Create(service.CreateAdminInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		IsSuper:     req.IsSuper,
		Roles:       req.Roles,
	}, auditMeta(c))
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules)
		return
	}
	response.Success(c, account)
}

// SetAdminRoles 覆盖账号角色
func (h *Handler) SetAdminRoles(c *gin.Context) {
	id, ok := pathUintID(c)
	if !ok {
		return
	}
	var req SetAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	roles, err := h.AdminService.SetRoles(c.Request.Context(), id, req.Roles, auditMeta(c))
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// ListRoles 可分配的角色
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, roles)
}

// ListAuditLogs 账号与权限变更审计日志
func (h *Handler) ListAuditLogs(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	createdFrom, err := handlershared.ParseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := handlershared.ParseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	logs, total, err := h.AdminService.AuditLogs(repository.AdminAuditLogListFilter{
		Page:            page,
		PageSize:        pageSize,
		OperatorAdminID: queryUint(c, "operator_admin_id"),
		TargetAdminID:   queryUint(c, "target_admin_id"),
		Action:          strings.TrimSpace(c.Query("action")),
		CreatedFrom:     createdFrom,
		CreatedTo:       createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, logs, response.BuildPagination(page, pageSize, total))
}

func auditMeta(c *gin.Context) service.AuditMeta {
	return service.AuditMeta{
		OperatorAdminID: handlershared.OptionalAdminID(c),
		RequestID:       c.GetString(handlershared.ContextKeyRequestID),
	}
}

func queryUint(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}
