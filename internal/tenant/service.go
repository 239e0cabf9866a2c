// Package tenant serves the caller's tenant context to the gRPC and HTTP transports. Every call
// rebuilds the context from the datasets; nothing a client sends is trusted beyond the opaque
// selection token, which only ever narrows the choice to one of the caller's own organizations.
package tenant

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	auditrepo "tenant-core/internal/audit/repository"
	"tenant-core/internal/membership/domain"
	"tenant-core/internal/platform/rbac"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/tenantctx"
	userdomain "tenant-core/internal/user/domain"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

// ContextBuilder builds the tenant context and mints selection tokens.
type ContextBuilder interface {
	rbac.ContextBuilder
	SelectionToken(tc *tenantctx.Context) (string, error)
}

// AccessQuery is a CheckAccess request in its wire form.
type AccessQuery struct {
	RequiredRole           string
	RequiredGlobalRole     string
	RequiredOrganizationID string
	Action                 string
}

// Service implements the tenant operations. Errors are gRPC status errors; the HTTP transport
// maps them to status codes.
type Service struct {
	builder   ContextBuilder
	guard     *rbac.Guard
	auditLogs auditrepo.Repository
}

// NewService returns a Service. auditLogs may be nil; ListAuditLogs then returns Unimplemented.
func NewService(builder ContextBuilder, guard *rbac.Guard, auditLogs auditrepo.Repository) *Service {
	return &Service{builder: builder, guard: guard, auditLogs: auditLogs}
}

func (s *Service) build(ctx context.Context, selectionToken string) (*tenantctx.Context, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "user context required")
	}
	return s.builder.Build(ctx, userID, selectionToken), nil
}

func (s *Service) view(tc *tenantctx.Context) *ContextView {
	token, err := s.builder.SelectionToken(tc)
	if err != nil {
		log.Printf("tenant: selection token for user %s: %v", tc.UserID(), err)
	}
	return contextView(tc, token)
}

// GetContext returns the caller's tenant context, honouring selectionToken when it is valid.
func (s *Service) GetContext(ctx context.Context, selectionToken string) (*ContextView, error) {
	tc, err := s.build(ctx, selectionToken)
	if err != nil {
		return nil, err
	}
	return s.view(tc), nil
}

// SelectOrganization switches the selection to orgID. An organization outside the caller's set
// leaves the previous selection in place and reports changed=false.
func (s *Service) SelectOrganization(ctx context.Context, selectionToken, orgID string) (*ContextView, error) {
	if orgID == "" {
		return nil, status.Error(codes.InvalidArgument, "organization_id is required")
	}
	tc, err := s.build(ctx, selectionToken)
	if err != nil {
		return nil, err
	}
	before := tc.Selected()
	next, ok := tc.Select(orgID)
	changed := ok && next.Selected() != before
	v := s.view(next)
	v.Changed = &changed
	return v, nil
}

// CheckAccess evaluates q against a freshly built context. A denial is a normal response.
func (s *Service) CheckAccess(ctx context.Context, selectionToken string, q AccessQuery) (*AccessView, error) {
	req, err := q.requirement()
	if err != nil {
		return nil, err
	}
	tc, err := s.build(ctx, selectionToken)
	if err != nil {
		return nil, err
	}
	return accessView(s.guard.Check(ctx, tc, req)), nil
}

func (q AccessQuery) requirement() (rbac.Requirement, error) {
	req := rbac.Requirement{OrgID: q.RequiredOrganizationID, Action: rbac.ActionRead}
	if q.RequiredRole != "" {
		role, ok := domain.ParseRole(q.RequiredRole)
		if !ok {
			return req, status.Errorf(codes.InvalidArgument, "unknown role %q", q.RequiredRole)
		}
		req.Role = role
	}
	if q.RequiredGlobalRole != "" {
		g, ok := userdomain.LookupGlobalRole(q.RequiredGlobalRole)
		if !ok {
			return req, status.Errorf(codes.InvalidArgument, "unknown global role %q", q.RequiredGlobalRole)
		}
		req.GlobalRole = g
	}
	switch rbac.Action(q.Action) {
	case "", rbac.ActionRead:
	case rbac.ActionWrite:
		req.Action = rbac.ActionWrite
	default:
		return req, status.Errorf(codes.InvalidArgument, "unknown action %q", q.Action)
	}
	return req, nil
}

// ListOrganizations returns the caller's visible organizations in resolution order.
func (s *Service) ListOrganizations(ctx context.Context) ([]OrgView, error) {
	tc, err := s.build(ctx, "")
	if err != nil {
		return nil, err
	}
	return orgViews(tc.Organizations()), nil
}

// GetOrganization returns orgID's summary; the caller must be an active member.
func (s *Service) GetOrganization(ctx context.Context, orgID string) (*OrgView, error) {
	tc, err := rbac.RequireOrgMember(ctx, s.builder, s.guard, orgID)
	if err != nil {
		return nil, err
	}
	o, ok := tc.Organization(orgID)
	if !ok {
		// Platform bypass grants access to organizations the caller has no membership in.
		return &OrgView{ID: orgID}, nil
	}
	v := orgView(o)
	return &v, nil
}

// ListAuditLogs returns orgID's audit trail, newest first; the caller must be ADMIN or OWNER there.
func (s *Service) ListAuditLogs(ctx context.Context, orgID string, limit, offset int) ([]AuditLogView, error) {
	if s.auditLogs == nil {
		return nil, status.Error(codes.Unimplemented, "audit log is not configured")
	}
	if _, err := rbac.RequireOrgAdmin(ctx, s.builder, s.guard, orgID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.auditLogs.ListByOrg(ctx, orgID, limit, offset)
	if err != nil {
		log.Printf("tenant: list audit logs for org %s: %v", orgID, err)
		return nil, status.Error(codes.Internal, "failed to list audit logs")
	}
	return auditLogViews(logs), nil
}
