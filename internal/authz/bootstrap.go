package authz

import (
	"fmt"

	"github.com/techfood-api/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
// admin 拥有全部后台权限，associate 仅限商家端自己餐厅的资源
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleAdmin,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
				{Object: "/associate/*", Action: "*"},
			},
		},
		{
			Role: constants.RoleAssociate,
			Policies: []Policy{
				{Object: "/associate/orders", Action: "GET"},
				{Object: "/associate/orders/:id", Action: "GET"},
				{Object: "/associate/orders/:id/status", Action: "PATCH"},
				{Object: "/associate/menu-items", Action: "*"},
				{Object: "/associate/menu-items/:id", Action: "*"},
				{Object: "/associate/menu-items/:id/availability", Action: "PATCH"},
				{Object: "/associate/upload", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
