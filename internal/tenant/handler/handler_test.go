package handler

import (
	"context"
	"testing"
	"time"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/membership/resolver"
	"tenant-core/internal/platform/rbac"
	"tenant-core/internal/security"
	"tenant-core/internal/tenant"
	"tenant-core/internal/tenantctx"
	userdomain "tenant-core/internal/user/domain"
)

type staticResolver map[string]*resolver.Resolution

func (s staticResolver) Resolve(_ context.Context, userID string) *resolver.Resolution {
	return s[userID]
}

func newTestService(t *testing.T) *tenant.Service {
	t.Helper()
	codec, err := security.NewSelectionCodec([]byte(security.TestSelectionSecret), time.Hour)
	if err != nil {
		t.Fatalf("NewSelectionCodec: %v", err)
	}
	res := staticResolver{
		"U": {
			User:       &userdomain.User{ID: "U", Email: "u@example.com"},
			GlobalRole: userdomain.GlobalRoleUser,
			Organizations: []domain.OrgSummary{
				{ID: "orgA", Name: "Alpha", Role: domain.RoleAdmin, Status: domain.StatusActive},
				{ID: "orgB", Name: "Beta", Role: domain.RoleMember, Status: domain.StatusInactive},
			},
		},
	}
	return tenant.NewService(tenantctx.NewBuilder(res, codec), rbac.NewGuard(nil), nil)
}
