package rbac

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/tenantctx"
	userdomain "tenant-core/internal/user/domain"
)

type stubBuilder struct {
	tokens []string
}

func (b *stubBuilder) Build(_ context.Context, userID, selectionToken string) *tenantctx.Context {
	b.tokens = append(b.tokens, selectionToken)
	return scenarioContext(userdomain.GlobalRoleUser)
}

func TestRequireAccess(t *testing.T) {
	g := NewGuard(nil)
	authed := interceptors.WithIdentity(context.Background(), "U", "sess")

	if _, err := RequireAccess(context.Background(), &stubBuilder{}, g, "", Requirement{}); status.Code(err) != codes.Unauthenticated {
		t.Errorf("anonymous = %v, want Unauthenticated", err)
	}

	b := &stubBuilder{}
	tc, err := RequireAccess(authed, b, g, "tok", Requirement{Role: domain.RoleMember})
	if err != nil || tc == nil {
		t.Fatalf("RequireAccess = %v", err)
	}
	if len(b.tokens) != 1 || b.tokens[0] != "tok" {
		t.Errorf("selection token not forwarded: %v", b.tokens)
	}

	_, err = RequireAccess(authed, b, g, "", Requirement{OrgID: "orgA", Role: domain.RoleOwner})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("err = %v, want PermissionDenied", err)
	}
	if st, _ := status.FromError(err); st.Message() != ReasonInsufficientRole {
		t.Errorf("message = %q, want deny reason", st.Message())
	}
}

func TestRequireOrgHelpers(t *testing.T) {
	g := NewGuard(nil)
	ctx := interceptors.WithIdentity(context.Background(), "U", "sess")
	b := &stubBuilder{}

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"member of active org", func() error { _, err := RequireOrgMember(ctx, b, g, "orgA"); return err }, codes.OK},
		{"member of inactive org", func() error { _, err := RequireOrgMember(ctx, b, g, "orgB"); return err }, codes.PermissionDenied},
		{"member without org id", func() error { _, err := RequireOrgMember(ctx, b, g, ""); return err }, codes.InvalidArgument},
		{"admin of orgA", func() error { _, err := RequireOrgAdmin(ctx, b, g, "orgA"); return err }, codes.OK},
		{"admin of staff org", func() error { _, err := RequireOrgAdmin(ctx, b, g, "orgS"); return err }, codes.PermissionDenied},
		{"role accountant in orgA", func() error {
			_, err := RequireOrgRole(ctx, b, g, "orgA", domain.RoleAccountant)
			return err
		}, codes.OK},
		{"role owner in orgA", func() error {
			_, err := RequireOrgRole(ctx, b, g, "orgA", domain.RoleOwner)
			return err
		}, codes.PermissionDenied},
		{"role without org id", func() error {
			_, err := RequireOrgRole(ctx, b, g, "", domain.RoleMember)
			return err
		}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(tt.call()); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}
}
