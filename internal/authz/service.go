package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiPrefix  = "/api/v1"
	ruleTable  = "casbin_rule"
	rolePrefix = "role:"
)

// 管理员主体与角色都走 g 关系，路由按 keyMatch2 匹配，动作 * 表示任意方法
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (p.act == "*" || r.act == p.act)
`

var (
	// ErrUnknownRole 角色不在预置目录中
	ErrUnknownRole = errors.New("unknown role")

	errUnavailable = errors.New("authz service unavailable")
)

// Policy 一条路由授权
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// RoleInfo 预置角色目录项
type RoleInfo struct {
	Role     string   `json:"role"`
	Inherits []string `json:"inherits"`
	Policies []Policy `json:"policies"`
}

// Service 后台路由授权
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 基于业务库的 casbin_rule 表创建授权服务
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", ruleTable)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return errUnavailable
	}
	return nil
}

// EnforceAdmin 判断管理员能否以 method 访问 path
func (s *Service) EnforceAdmin(adminID uint, path, method string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.enforcer.Enforce(adminSubject(adminID), NormalizeObject(path), NormalizeAction(method))
}

// SetAdminRoles 覆盖管理员的角色，只接受预置角色
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	if adminID == 0 {
		return errors.New("admin id is required")
	}
	if err := s.ready(); err != nil {
		return err
	}
	keys := make([]string, 0, len(roles))
	for _, role := range roles {
		name, ok := lookupRole(role)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRole, role)
		}
		keys = append(keys, roleKey(name))
	}

	subject := adminSubject(adminID)
	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear admin roles failed: %w", err)
	}
	for _, key := range keys {
		if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, key); err != nil {
			return fmt.Errorf("assign admin role failed: %w", err)
		}
	}
	return nil
}

// GetAdminRoles 直接分配给管理员的角色名
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	keys, err := s.enforcer.GetRolesForUser(adminSubject(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin roles failed: %w", err)
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if name, ok := strings.CutPrefix(key, rolePrefix); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// GetAdminPolicies 管理员的生效授权，包含继承角色
func (s *Service) GetAdminPolicies(adminID uint) ([]Policy, error) {
	roles, err := s.GetAdminRoles(adminID)
	if err != nil {
		return nil, err
	}
	seen := map[Policy]struct{}{}
	result := make([]Policy, 0)
	for _, role := range expandInherited(roles) {
		rules, err := s.enforcer.GetFilteredPolicy(0, roleKey(role))
		if err != nil {
			return nil, fmt.Errorf("get role policies failed: %w", err)
		}
		for _, rule := range rules {
			if len(rule) < 3 {
				continue
			}
			policy := Policy{Subject: role, Object: NormalizeObject(rule[1]), Action: NormalizeAction(rule[2])}
			if _, dup := seen[policy]; dup {
				continue
			}
			seen[policy] = struct{}{}
			result = append(result, policy)
		}
	}
	sortPolicies(result)
	return result, nil
}

// ListRoles 预置角色目录
func (s *Service) ListRoles() ([]RoleInfo, error) {
	seeds := BuiltinRoleSeeds()
	roles := make([]RoleInfo, 0, len(seeds))
	for _, seed := range seeds {
		info := RoleInfo{Role: seed.Role, Inherits: append([]string{}, seed.Inherits...)}
		for _, p := range seed.Policies {
			info.Policies = append(info.Policies, Policy{Subject: seed.Role, Object: NormalizeObject(p.Object), Action: NormalizeAction(p.Action)})
		}
		sortPolicies(info.Policies)
		roles = append(roles, info)
	}
	return roles, nil
}

// expandInherited 按预置继承关系展开角色，保持去重
func expandInherited(roles []string) []string {
	parents := map[string][]string{}
	for _, seed := range BuiltinRoleSeeds() {
		parents[seed.Role] = seed.Inherits
	}
	seen := map[string]bool{}
	var out []string
	var visit func(string)
	visit = func(role string) {
		if seen[role] {
			return
		}
		seen[role] = true
		out = append(out, role)
		for _, parent := range parents[role] {
			visit(parent)
		}
	}
	for _, role := range roles {
		visit(role)
	}
	return out
}

func sortPolicies(policies []Policy) {
	sort.Slice(policies, func(i, j int) bool {
		a, b := policies[i], policies[j]
		if a.Object != b.Object {
			return a.Object < b.Object
		}
		if a.Action != b.Action {
			return a.Action < b.Action
		}
		return a.Subject < b.Subject
	})
}

func adminSubject(adminID uint) string {
	return fmt.Sprintf("admin:%d", adminID)
}

func roleKey(name string) string {
	return rolePrefix + name
}

// NormalizeObject 去掉 /api/v1 前缀，得到策略中使用的路由
func NormalizeObject(object string) string {
	path := strings.TrimSpace(object)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = strings.TrimPrefix(path, apiPrefix)
	if path == "" {
		return "/"
	}
	return path
}

// NormalizeAction HTTP 方法统一大写
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
