package service

import (
	"context"
	"errors"
	"testing"

	"github.com/salon-next/internal/authz"
	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/repository"
)

func newAdminServiceForTest(t *testing.T) *AdminService {
	t.Helper()
	db := setupServiceTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{PasswordPolicy: config.PasswordPolicyConfig{
			MinLength: 8, RequireLower: true, RequireNumber: true,
		}},
	}
	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("init authz failed: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	adminRepo := repository.NewAdminRepository(db)
	return NewAdminService(adminRepo, repository.NewAdminAuditLogRepository(db), NewAuthService(cfg, adminRepo), authzService)
}

func TestAdminServiceCreateAndSetRolesWritesAudit(t *testing.T) {
	svc := newAdminServiceForTest(t)
	meta := AuditMeta{OperatorAdminID: 1, RequestID: "req-1"}

	account, err := svc.Create(CreateAdminInput{
		Username: "reception",
		Password: "frontdesk1",
		Roles:    []string{authz.RoleFrontDesk},
	}, meta)
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if len(account.Roles) != 1 {
		t.Fatalf("want 1 role got %v", account.Roles)
	}

	if _, err := svc.Create(CreateAdminInput{Username: "reception", Password: "frontdesk1"}, meta); !errors.Is(err, ErrAdminExists) {
		t.Fatalf("duplicate username should fail, got %v", err)
	}
	if _, err := svc.Create(CreateAdminInput{Username: "ghost", Password: "frontdesk1", Roles: []string{"root"}}, meta); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("unknown role should fail, got %v", err)
	}

	if _, err := svc.SetRoles(context.Background(), account.ID, []string{authz.RoleManager}, AuditMeta{OperatorAdminID: 1, RequestID: "req-2"}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}
	if _, err := svc.SetRoles(context.Background(), 9999, nil, meta); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("missing admin should fail, got %v", err)
	}

	logs, total, err := svc.AuditLogs(repository.AdminAuditLogListFilter{TargetAdminID: account.ID, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list audit logs failed: %v", err)
	}
	if total != 2 || len(logs) != 2 {
		t.Fatalf("want 2 audit logs got %d", total)
	}
	if logs[0].Action != constants.AuditActionRolesSet || logs[0].RequestID != "req-2" {
		t.Fatalf("newest entry should be role change, got %+v", logs[0])
	}
	if logs[1].Action != constants.AuditActionAdminCreate || logs[1].TargetUsername != "reception" {
		t.Fatalf("oldest entry should be creation, got %+v", logs[1])
	}

	filtered, _, err := svc.AuditLogs(repository.AdminAuditLogListFilter{Action: constants.AuditActionAdminCreate})
	if err != nil || len(filtered) != 1 {
		t.Fatalf("action filter want 1 got %d err=%v", len(filtered), err)
	}
}
