package handler

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	tenantv1 "tenant-core/api/tenant/v1"
	"tenant-core/internal/tenant"
)

// Server implements tenant.v1.TenantService over the tenant Service.
type Server struct {
	tenantv1.UnimplementedTenantServiceServer
	svc *tenant.Service
}

// NewServer returns a TenantService server. svc may be nil; every method then returns Unavailable.
func NewServer(svc *tenant.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ready() error {
	if s.svc == nil {
		return status.Error(codes.Unavailable, "tenant service not configured")
	}
	return nil
}

// GetContext returns the caller's tenant context.
func (s *Server) GetContext(ctx context.Context, req *tenantv1.GetContextRequest) (*tenantv1.GetContextResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v, err := s.svc.GetContext(ctx, selectionToken(ctx, req.GetSelectionToken()))
	if err != nil {
		return nil, err
	}
	return &tenantv1.GetContextResponse{Context: contextToProto(v)}, nil
}

// SelectOrganization switches the selected organization.
func (s *Server) SelectOrganization(ctx context.Context, req *tenantv1.SelectOrganizationRequest) (*tenantv1.SelectOrganizationResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v, err := s.svc.SelectOrganization(ctx, selectionToken(ctx, req.GetSelectionToken()), strings.TrimSpace(req.GetOrganizationId()))
	if err != nil {
		return nil, err
	}
	return &tenantv1.SelectOrganizationResponse{Context: contextToProto(v), Changed: v.Changed != nil && *v.Changed}, nil
}

// CheckAccess evaluates an access requirement server-side.
func (s *Server) CheckAccess(ctx context.Context, req *tenantv1.CheckAccessRequest) (*tenantv1.CheckAccessResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v, err := s.svc.CheckAccess(ctx, selectionToken(ctx, req.GetSelectionToken()), tenant.AccessQuery{
		RequiredRole:           strings.TrimSpace(req.GetRequiredRole()),
		RequiredGlobalRole:     strings.TrimSpace(req.GetRequiredGlobalRole()),
		RequiredOrganizationID: strings.TrimSpace(req.GetRequiredOrganizationId()),
		Action:                 strings.TrimSpace(req.GetAction()),
	})
	if err != nil {
		return nil, err
	}
	return &tenantv1.CheckAccessResponse{Allowed: v.Allowed, Reason: v.Reason}, nil
}

// ListOrganizations returns the caller's visible organizations.
func (s *Server) ListOrganizations(ctx context.Context, _ *tenantv1.ListOrganizationsRequest) (*tenantv1.ListOrganizationsResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	orgs, err := s.svc.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	return &tenantv1.ListOrganizationsResponse{Organizations: orgsToProto(orgs)}, nil
}

// GetOrganization returns one organization the caller is an active member of.
func (s *Server) GetOrganization(ctx context.Context, req *tenantv1.GetOrganizationRequest) (*tenantv1.GetOrganizationResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	org, err := s.svc.GetOrganization(ctx, strings.TrimSpace(req.GetOrganizationId()))
	if err != nil {
		return nil, err
	}
	return &tenantv1.GetOrganizationResponse{Organization: orgToProto(*org)}, nil
}

// ListAuditLogs returns an organization's audit trail to its admins.
func (s *Server) ListAuditLogs(ctx context.Context, req *tenantv1.ListAuditLogsRequest) (*tenantv1.ListAuditLogsResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	logs, err := s.svc.ListAuditLogs(ctx, strings.TrimSpace(req.GetOrganizationId()), int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, err
	}
	out := make([]*tenantv1.AuditLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, &tenantv1.AuditLog{
			Id: l.ID, UserId: l.UserID, Action: l.Action, Resource: l.Resource,
			Ip: l.IP, Metadata: l.Metadata, CreatedAt: l.CreatedAt,
		})
	}
	return &tenantv1.ListAuditLogsResponse{AuditLogs: out}, nil
}

// selectionToken prefers the request field and falls back to the x-selection-token metadata.
func selectionToken(ctx context.Context, field string) string {
	if t := strings.TrimSpace(field); t != "" {
		return t
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(tenantv1.SelectionTokenMetadataKey); len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
	}
	return ""
}

func contextToProto(v *tenant.ContextView) *tenantv1.TenantContext {
	out := &tenantv1.TenantContext{
		GlobalRole:             v.GlobalRole,
		Organizations:          orgsToProto(v.Organizations),
		SelectedOrganizationId: v.SelectedOrganizationID,
		CurrentRole:            v.CurrentRole,
		SelectionToken:         v.SelectionToken,
		Empty:                  v.Empty,
	}
	if u := v.User; u != nil {
		out.User = &tenantv1.User{Id: u.ID, Email: u.Email, Name: u.Name, Image: u.Image, GlobalRole: u.GlobalRole}
	}
	return out
}

func orgsToProto(orgs []tenant.OrgView) []*tenantv1.Organization {
	out := make([]*tenantv1.Organization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, orgToProto(o))
	}
	return out
}

func orgToProto(o tenant.OrgView) *tenantv1.Organization {
	return &tenantv1.Organization{
		Id: o.ID, Name: o.Name, Type: o.Type, LogoImage: o.LogoImage,
		Role: o.Role, Status: o.Status, Active: o.Active, Inactive: o.Inactive,
	}
}
