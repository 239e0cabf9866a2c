// Package tenantctx holds the immutable per-request view of who the caller is, which organizations
// they can see and which one is selected.
//
// A Context is never mutated after construction. Select returns a new value, so concurrent
// readers of an existing Context never observe a selection change.
package tenantctx

import (
	"context"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/membership/resolver"
	userdomain "tenant-core/internal/user/domain"
)

// Context is the resolved membership snapshot plus the selected organization.
type Context struct {
	userID     string
	user       *userdomain.User
	globalRole userdomain.GlobalRole
	orgs       []domain.OrgSummary
	index      map[string]int
	selected   string
}

// New builds a Context. preferredOrgID is honoured when it names an organization in orgs;
// otherwise the first active organization in list order is selected, and if there is none the
// selection is empty. orgs is copied.
func New(userID string, user *userdomain.User, globalRole userdomain.GlobalRole, orgs []domain.OrgSummary, preferredOrgID string) *Context {
	if globalRole == "" {
		globalRole = userdomain.GlobalRoleUser
	}
	c := &Context{
		userID:     userID,
		user:       user,
		globalRole: globalRole,
		orgs:       append([]domain.OrgSummary(nil), orgs...),
		index:      make(map[string]int, len(orgs)),
	}
	for i, o := range c.orgs {
		if _, dup := c.index[o.ID]; !dup {
			c.index[o.ID] = i
		}
	}
	if _, ok := c.index[preferredOrgID]; ok && preferredOrgID != "" {
		c.selected = preferredOrgID
		return c
	}
	for _, o := range c.orgs {
		if o.Active() {
			c.selected = o.ID
			break
		}
	}
	return c
}

// FromResolution builds a Context for userID from a resolver result.
func FromResolution(userID string, res *resolver.Resolution, preferredOrgID string) *Context {
	if res == nil {
		return New(userID, nil, userdomain.GlobalRoleUser, nil, preferredOrgID)
	}
	return New(userID, res.User, res.GlobalRole, res.Organizations, preferredOrgID)
}

// UserID returns the id of the caller the context was built for.
func (c *Context) UserID() string { return c.userID }

// User returns the caller's profile, or nil when it could not be loaded.
func (c *Context) User() *userdomain.User { return c.user }

// GlobalRole returns the caller's platform-wide role.
func (c *Context) GlobalRole() userdomain.GlobalRole { return c.globalRole }

// Organizations returns a copy of the visible organizations in resolution order.
func (c *Context) Organizations() []domain.OrgSummary {
	return append([]domain.OrgSummary(nil), c.orgs...)
}

// IsEmpty reports whether the caller belongs to no organization. UIs render a
// "create your first organization" prompt in that case, not an error.
func (c *Context) IsEmpty() bool { return len(c.orgs) == 0 }

// Selected returns the selected organization id, or "" when nothing is selectable.
func (c *Context) Selected() string { return c.selected }

// Select returns a context with orgID selected and true. When orgID is not among the caller's
// organizations it returns c unchanged and false.
func (c *Context) Select(orgID string) (*Context, bool) {
	if _, ok := c.index[orgID]; !ok || orgID == "" {
		return c, false
	}
	if orgID == c.selected {
		return c, true
	}
	next := *c
	next.selected = orgID
	return &next, true
}

// Organization returns the summary for orgID.
func (c *Context) Organization(orgID string) (domain.OrgSummary, bool) {
	i, ok := c.index[orgID]
	if !ok {
		return domain.OrgSummary{}, false
	}
	return c.orgs[i], true
}

// CurrentRole returns the role held in the selected organization. It is looked up on every call,
// so it always matches the selection.
func (c *Context) CurrentRole() (domain.Role, bool) {
	return c.RoleIn(c.selected)
}

// RoleIn returns the role held in orgID regardless of membership status.
func (c *Context) RoleIn(orgID string) (domain.Role, bool) {
	o, ok := c.Organization(orgID)
	if !ok {
		return "", false
	}
	return o.Role, true
}

// HasActiveMembership reports whether the caller is an active member of orgID.
// Inactive memberships are visible but do not count.
func (c *Context) HasActiveMembership(orgID string) bool {
	o, ok := c.Organization(orgID)
	return ok && o.Active()
}

type ctxKey struct{}

// With returns ctx carrying tc.
func With(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, tc)
}

// From returns the Context carried by ctx, or nil.
func From(ctx context.Context) *Context {
	tc, _ := ctx.Value(ctxKey{}).(*Context)
	return tc
}
