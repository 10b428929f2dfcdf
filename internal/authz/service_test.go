package authz

import (
	"fmt"
	"testing"
	"time"

	"github.com/techfood-api/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAuthzTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:authz_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles: %v", err)
	}
	return svc
}

func TestBuiltinRolePolicies(t *testing.T) {
	svc := newAuthzTestService(t)

	cases := []struct {
		role    string
		obj     string
		act     string
		allowed bool
	}{
		{constants.RoleAdmin, "/admin/restaurants", "POST", true},
		{constants.RoleAdmin, "/admin/orders/42", "GET", true},
		{constants.RoleAdmin, "/associate/orders", "GET", true},
		{constants.RoleAssociate, "/associate/orders", "GET", true},
		{constants.RoleAssociate, "/associate/orders/42/status", "PATCH", true},
		{constants.RoleAssociate, "/associate/menu-items/7", "PUT", true},
		{constants.RoleAssociate, "/admin/restaurants", "POST", false},
		{constants.RoleAssociate, "/admin/users", "GET", false},
		{constants.RoleClient, "/admin/restaurants", "GET", false},
		{constants.RoleClient, "/associate/orders", "GET", false},
	}
	for _, tc := range cases {
		allowed, err := svc.EnforceRole(tc.role, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %s %s %s: %v", tc.role, tc.obj, tc.act, err)
		}
		if allowed != tc.allowed {
			t.Fatalf("enforce %s %s %s: expected %v, got %v", tc.role, tc.obj, tc.act, tc.allowed, allowed)
		}
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := newAuthzTestService(t)

	allowed, err := svc.EnforceRole(constants.RoleAssociate, "/admin/reports", "GET")
	if err != nil {
		t.Fatalf("enforce: %v", err)
	}
	if allowed {
		t.Fatalf("associate must not access reports before grant")
	}

	if err := svc.GrantRolePolicy(constants.RoleAssociate, "/admin/reports", "GET"); err != nil {
		t.Fatalf("grant: %v", err)
	}
	allowed, err = svc.EnforceRole(constants.RoleAssociate, "/admin/reports", "GET")
	if err != nil {
		t.Fatalf("enforce after grant: %v", err)
	}
	if !allowed {
		t.Fatalf("expected access after grant")
	}

	if err := svc.RevokeRolePolicy(constants.RoleAssociate, "/admin/reports", "GET"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	allowed, err = svc.EnforceRole(constants.RoleAssociate, "/admin/reports", "GET")
	if err != nil {
		t.Fatalf("enforce after revoke: %v", err)
	}
	if allowed {
		t.Fatalf("expected no access after revoke")
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/orders"); got != "/admin/orders" {
		t.Fatalf("expected /admin/orders, got %q", got)
	}
	if got := NormalizeObject("admin/orders"); got != "/admin/orders" {
		t.Fatalf("expected /admin/orders, got %q", got)
	}
	if got := NormalizeObject(""); got != "/" {
		t.Fatalf("expected /, got %q", got)
	}
}
