package authz

import (
	"fmt"
	"strings"
)

const (
	// RoleFrontDesk 前台：处理预约、留言与评价审核，其余只读
	RoleFrontDesk = "front_desk"
	// RoleManager 店长：在前台权限之上管理服务目录与活动
	RoleManager = "manager"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: RoleFrontDesk,
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
				{Object: "/admin/password", Action: "PUT"},
				{Object: "/admin/bookings/:id", Action: "*"},
				{Object: "/admin/feedback/:id", Action: "*"},
				{Object: "/admin/contact-messages/:id", Action: "*"},
			},
		},
		{
			Role:     RoleManager,
			Inherits: []string{RoleFrontDesk},
			Policies: []Policy{
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/services", Action: "*"},
				{Object: "/admin/services/:id", Action: "*"},
				{Object: "/admin/promotions", Action: "*"},
				{Object: "/admin/promotions/:id", Action: "*"},
				{Object: "/admin/staff", Action: "*"},
				{Object: "/admin/staff/:id", Action: "*"},
				{Object: "/admin/staff/:id/availability", Action: "PUT"},
				{Object: "/admin/staff/:id/services", Action: "PUT"},
				{Object: "/admin/gallery", Action: "*"},
				{Object: "/admin/gallery/:id", Action: "*"},
				{Object: "/admin/content-settings", Action: "PUT"},
			},
		},
	}
}

// IsBuiltinRole 判断是否为预置角色，兼容 role: 前缀与空格写法
func IsBuiltinRole(role string) bool {
	_, ok := lookupRole(role)
	return ok
}

func lookupRole(role string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(role))
	name = strings.TrimPrefix(name, rolePrefix)
	name = strings.Join(strings.Fields(name), "_")
	for _, seed := range BuiltinRoleSeeds() {
		if seed.Role == name {
			return name, true
		}
	}
	return "", false
}

// BootstrapBuiltinRoles 写入预置角色的继承关系与路由授权，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		key := roleKey(seed.Role)
		for _, parent := range seed.Inherits {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", key, roleKey(parent)); err != nil {
				return fmt.Errorf("link role %s to %s failed: %w", seed.Role, parent, err)
			}
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("role %s has a policy without action", seed.Role)
			}
			if _, err := s.enforcer.AddPolicy(key, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add policy for role %s failed: %w", seed.Role, err)
			}
		}
	}
	return nil
}
