package authz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:authz_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return svc
}

func TestBuiltinRolesMatrix(t *testing.T) {
	svc := newTestService(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{RoleFrontDesk}); err != nil {
		t.Fatalf("assign front desk failed: %v", err)
	}
	if err := svc.SetAdminRoles(3, []string{"Manager"}); err != nil {
		t.Fatalf("assign manager failed: %v", err)
	}

	cases := []struct {
		admin  uint
		path   string
		method string
		want   bool
	}{
		{2, "/api/v1/admin/promotions", "get", true},
		{2, "/api/v1/admin/promotions", "POST", false},
		{2, "/api/v1/admin/bookings/bk-1", "PUT", true},
		{2, "/api/v1/admin/feedback/9", "DELETE", true},
		{2, "/api/v1/admin/services/svc-gel", "PUT", false},
		{3, "/api/v1/admin/promotions", "POST", true},
		{3, "/api/v1/admin/staff/st-1/availability", "PUT", true},
		{3, "/api/v1/admin/bookings/bk-1", "PUT", true},
		{3, "/api/v1/admin/content-settings", "PUT", true},
		{3, "/api/v1/admin/admins", "POST", false},
		{4, "/api/v1/admin/promotions", "GET", false},
	}
	for _, tc := range cases {
		got, err := svc.EnforceAdmin(tc.admin, tc.path, tc.method)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.method, tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("admin %d %s %s: want %v got %v", tc.admin, tc.method, tc.path, tc.want, got)
		}
	}
}

func TestSetAdminRolesReplacesPrevious(t *testing.T) {
	svc := newTestService(t)
	if err := svc.SetAdminRoles(2, []string{RoleFrontDesk}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{"role:manager"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}
	roles, err := svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != RoleManager {
		t.Fatalf("roles want [manager], got %v", roles)
	}

	if err := svc.SetAdminRoles(2, []string{"owner"}); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("want ErrUnknownRole, got %v", err)
	}
	roles, _ = svc.GetAdminRoles(2)
	if len(roles) != 1 {
		t.Fatalf("rejected assignment must keep roles, got %v", roles)
	}

	if err := svc.SetAdminRoles(2, nil); err != nil {
		t.Fatalf("clear roles failed: %v", err)
	}
	roles, _ = svc.GetAdminRoles(2)
	if len(roles) != 0 {
		t.Fatalf("roles should be empty, got %v", roles)
	}
}

func TestAdminPoliciesIncludeInherited(t *testing.T) {
	svc := newTestService(t)
	if err := svc.SetAdminRoles(5, []string{RoleManager}); err != nil {
		t.Fatalf("assign manager failed: %v", err)
	}
	policies, err := svc.GetAdminPolicies(5)
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	var fromFrontDesk, fromManager bool
	for _, p := range policies {
		if p.Subject == RoleFrontDesk && p.Object == "/admin/bookings/:id" {
			fromFrontDesk = true
		}
		if p.Subject == RoleManager && p.Object == "/admin/promotions" {
			fromManager = true
		}
	}
	if !fromFrontDesk || !fromManager {
		t.Fatalf("expected own and inherited policies, got %+v", policies)
	}
}

func TestListRolesCatalog(t *testing.T) {
	svc := newTestService(t)
	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles) != 2 || roles[0].Role != RoleFrontDesk || roles[1].Role != RoleManager {
		t.Fatalf("unexpected roles: %+v", roles)
	}
	if len(roles[1].Inherits) != 1 || roles[1].Inherits[0] != RoleFrontDesk {
		t.Fatalf("manager should inherit front desk: %+v", roles[1])
	}
}

func TestRoleAndObjectHelpers(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/services"); got != "/admin/services" {
		t.Fatalf("unexpected object: %s", got)
	}
	if got := NormalizeObject("/api/v1"); got != "/" {
		t.Fatalf("unexpected root object: %s", got)
	}
	if !IsBuiltinRole("role:manager") || !IsBuiltinRole("Front Desk") || IsBuiltinRole("owner") {
		t.Fatalf("unexpected builtin role detection")
	}
}
