package tenant

import (
	"time"

	auditdomain "tenant-core/internal/audit/domain"
	"tenant-core/internal/membership/domain"
	"tenant-core/internal/platform/rbac"
	"tenant-core/internal/tenantctx"
	userdomain "tenant-core/internal/user/domain"
)

// UserView is the caller's profile as returned to clients.
type UserView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	GlobalRole string `json:"global_role"`
}

// OrgView is one visible organization. Inactive memberships are listed with inactive=true and
// grant no access.
type OrgView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	LogoImage string `json:"logo_image,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Active    bool   `json:"active"`
	Inactive  bool   `json:"inactive"`
}

// ContextView is the serialized tenant context.
type ContextView struct {
	User                   *UserView `json:"user"`
	GlobalRole             string    `json:"global_role"`
	Organizations          []OrgView `json:"organizations"`
	SelectedOrganizationID string    `json:"selected_organization_id"`
	CurrentRole            string    `json:"current_role"`
	SelectionToken         string    `json:"selection_token"`
	// Empty asks the UI for the "create your first organization" prompt.
	Empty bool `json:"empty"`
	// Changed is only set by SelectOrganization.
	Changed *bool `json:"changed,omitempty"`
}

// AccessView is the result of CheckAccess.
type AccessView struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// AuditLogView is one audit entry.
type AuditLogView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	IP        string `json:"ip"`
	Metadata  string `json:"metadata,omitempty"`
	CreatedAt string `json:"created_at"`
}

func userView(u *userdomain.User) *UserView {
	if u == nil {
		return nil
	}
	return &UserView{ID: u.ID, Email: u.Email, Name: u.Name, Image: u.Image, GlobalRole: string(u.GlobalRole)}
}

func orgView(o domain.OrgSummary) OrgView {
	return OrgView{
		ID: o.ID, Name: o.Name, Type: string(o.Type), LogoImage: o.LogoImage,
		Role: string(o.Role), Status: string(o.Status),
		Active: o.Active(), Inactive: o.Inactive(),
	}
}

func orgViews(orgs []domain.OrgSummary) []OrgView {
	out := make([]OrgView, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, orgView(o))
	}
	return out
}

func contextView(tc *tenantctx.Context, token string) *ContextView {
	v := &ContextView{
		User:                   userView(tc.User()),
		GlobalRole:             string(tc.GlobalRole()),
		Organizations:          orgViews(tc.Organizations()),
		SelectedOrganizationID: tc.Selected(),
		SelectionToken:         token,
		Empty:                  tc.IsEmpty(),
	}
	if role, ok := tc.CurrentRole(); ok {
		v.CurrentRole = string(role)
	}
	return v
}

func accessView(d rbac.Decision) *AccessView {
	return &AccessView{Allowed: d.Allowed, Reason: d.Reason}
}

func auditLogViews(logs []*auditdomain.AuditLog) []AuditLogView {
	out := make([]AuditLogView, 0, len(logs))
	for _, l := range logs {
		out = append(out, AuditLogView{
			ID: l.ID, UserID: l.UserID, Action: l.Action, Resource: l.Resource,
			IP: l.IP, Metadata: l.Metadata, CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
