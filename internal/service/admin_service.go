package service

import (
	"context"
	"strings"

	"github.com/salon-next/internal/authz"
	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// AdminService 后台账号管理
type AdminService struct {
	repo        repository.AdminRepository
	auditRepo   repository.AdminAuditLogRepository
	authService *AuthService
	authz       *authz.Service
}

// NewAdminService 创建后台账号服务
func NewAdminService(repo repository.AdminRepository, auditRepo repository.AdminAuditLogRepository, authService *AuthService, authzService *authz.Service) *AdminService {
	return &AdminService{
		repo:        repo,
		auditRepo:   auditRepo,
		authService: authService,
		authz:       authzService,
	}
}

// AuditMeta 操作人信息
type AuditMeta struct {
	OperatorAdminID uint
	RequestID       string
}

// AdminAccount 账号及其角色
type AdminAccount struct {
	models.Admin
	Roles []string `json:"roles"`
}

// CreateAdminInput 创建账号输入
type CreateAdminInput struct {
	Username    string
	DisplayName string
	Password    string
	IsSuper     bool
	Roles       []string
}

// List 账号列表（含角色）
func (s *AdminService) List() ([]AdminAccount, error) {
	admins, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	accounts := make([]AdminAccount, 0, len(admins))
	for i := range admins {
		roles, err := s.authz.GetAdminRoles(admins[i].ID)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, AdminAccount{Admin: admins[i], Roles: roles})
	}
	return accounts, nil
}

// Create 创建账号并分配预置角色
func (s *AdminService) Create(input CreateAdminInput, meta AuditMeta) (*AdminAccount, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrAdminInvalid
	}
	roles, err := normalizeBuiltinRoles(input.Roles)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}
	if err := s.authService.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: hash,
		IsSuper:      input.IsSuper,
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	if len(roles) > 0 {
		if err := s.authz.SetAdminRoles(admin.ID, roles); err != nil {
			return nil, err
		}
	}
	assigned, err := s.authz.GetAdminRoles(admin.ID)
	if err != nil {
		return nil, err
	}
	s.audit(meta, constants.AuditActionAdminCreate, admin, assigned)
	return &AdminAccount{Admin: *admin, Roles: assigned}, nil
}

// SetRoles 覆盖账号角色
func (s *AdminService) SetRoles(ctx context.Context, adminID uint, roles []string, meta AuditMeta) ([]string, error) {
	admin, err := s.repo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	normalized, err := normalizeBuiltinRoles(roles)
	if err != nil {
		return nil, err
	}
	if err := s.authz.SetAdminRoles(admin.ID, normalized); err != nil {
		return nil, err
	}
	_ = cache.ForgetAdminSession(ctx, admin.ID)
	assigned, err := s.authz.GetAdminRoles(admin.ID)
	if err != nil {
		return nil, err
	}
	s.audit(meta, constants.AuditActionRolesSet, admin, assigned)
	return assigned, nil
}

// AuditLogs 审计日志列表
func (s *AdminService) AuditLogs(filter repository.AdminAuditLogListFilter) ([]models.AdminAuditLog, int64, error) {
	if s.auditRepo == nil {
		return []models.AdminAuditLog{}, 0, nil
	}
	return s.auditRepo.List(filter)
}

// audit 写入失败只记录告警，不影响主流程
func (s *AdminService) audit(meta AuditMeta, action string, target *models.Admin, roles []string) {
	if s.auditRepo == nil || target == nil {
		return
	}
	targetID := target.ID
	entry := &models.AdminAuditLog{
		OperatorAdminID: meta.OperatorAdminID,
		TargetAdminID:   &targetID,
		TargetUsername:  target.Username,
		Action:          action,
		Roles:           models.StringArray(roles),
		RequestID:       meta.RequestID,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		logger.Warnw("admin_audit_write_failed", "action", action, "target_admin_id", targetID, "error", err)
	}
}

// Roles 账号角色
func (s *AdminService) Roles(adminID uint) ([]string, error) {
	return s.authz.GetAdminRoles(adminID)
}

// Policies 账号生效策略
func (s *AdminService) Policies(adminID uint) ([]authz.Policy, error) {
	return s.authz.GetAdminPolicies(adminID)
}

func normalizeBuiltinRoles(roles []string) ([]string, error) {
	result := make([]string, 0, len(roles))
	for _, role := range uniqueTrimmed(roles) {
		if !authz.IsBuiltinRole(role) {
			return nil, ErrRoleInvalid
		}
		result = append(result, role)
	}
	return result, nil
}
