package rbac

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/tenantctx"
)

// ContextBuilder rebuilds a caller's tenant context on the server. A context supplied by the
// client is never trusted for mutating operations.
type ContextBuilder interface {
	Build(ctx context.Context, userID, selectionToken string) *tenantctx.Context
}

// RequireAccess ensures the caller is authenticated and satisfies req, rebuilding the tenant
// context from the datasets. Returns the context on success; returns a gRPC error
// (Unauthenticated or PermissionDenied carrying the deny reason) on failure.
func RequireAccess(ctx context.Context, b ContextBuilder, g *Guard, selectionToken string, req Requirement) (*tenantctx.Context, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "user context required")
	}
	tc := b.Build(ctx, userID, selectionToken)
	if d := g.Check(ctx, tc, req); !d.Allowed {
		return nil, status.Error(codes.PermissionDenied, d.Reason)
	}
	return tc, nil
}

// RequireOrgMember ensures the caller is an active member of orgID (any role).
func RequireOrgMember(ctx context.Context, b ContextBuilder, g *Guard, orgID string) (*tenantctx.Context, error) {
	if orgID == "" {
		return nil, status.Error(codes.InvalidArgument, "organization_id is required")
	}
	return RequireAccess(ctx, b, g, "", Requirement{OrgID: orgID, Action: ActionRead})
}

// RequireOrgAdmin ensures the caller holds ADMIN or OWNER in orgID.
func RequireOrgAdmin(ctx context.Context, b ContextBuilder, g *Guard, orgID string) (*tenantctx.Context, error) {
	if orgID == "" {
		return nil, status.Error(codes.InvalidArgument, "organization_id is required")
	}
	return RequireAccess(ctx, b, g, "", Requirement{OrgID: orgID, Role: domain.RoleAdmin, Action: ActionWrite})
}

// RequireOrgRole ensures the caller holds at least role in orgID.
func RequireOrgRole(ctx context.Context, b ContextBuilder, g *Guard, orgID string, role domain.Role) (*tenantctx.Context, error) {
	if orgID == "" {
		return nil, status.Error(codes.InvalidArgument, "organization_id is required")
	}
	action := ActionRead
	if role.Rank() >= domain.RoleOfficeStaff.Rank() {
		action = ActionWrite
	}
	return RequireAccess(ctx, b, g, "", Requirement{OrgID: orgID, Role: role, Action: action})
}
