// Package rbac decides whether a caller may perform an operation, given their tenant context and
// the role or organization the operation requires.
package rbac

import (
	"context"
	"log"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/policy/engine"
	"tenant-core/internal/tenantctx"
	userdomain "tenant-core/internal/user/domain"
)

// Deny reasons. They are shown to the user, so keep them short and stable.
const (
	ReasonNotMember        = "not a member"
	ReasonInsufficientRole = "insufficient role"
	ReasonNoContext        = "no tenant context"
	ReasonNoSelection      = "no organization selected"
	ReasonPolicy           = "denied by organization policy"
)

// Action classifies an operation for the policy overlay.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Requirement is what an operation needs from the caller. Zero fields are not checked.
type Requirement struct {
	// GlobalRole is a platform-tier requirement, e.g. ADMIN for platform back-office pages.
	GlobalRole userdomain.GlobalRole
	// Role is an org-scoped requirement, checked in OrgID or, when OrgID is empty, in the selection.
	Role domain.Role
	// OrgID requires an active membership in that organization.
	OrgID string
	// Action is passed to the policy overlay only.
	Action Action
}

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool
	// Reason is set when Allowed is false.
	Reason string
	// GlobalBypass is true when a platform-tier role skipped the per-organization checks.
	GlobalBypass bool
}

// Allow is the allowing decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny returns a denying decision with reason.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// CanAccess evaluates req against tc. It is pure and safe to call client-side for display
// purposes; mutating operations must re-check on the server with Guard.
//
// Order: platform requirement, platform bypass (SUPERADMIN), organization membership (active
// only), then org role rank.
func CanAccess(tc *tenantctx.Context, req Requirement) Decision {
	if tc == nil {
		return Deny(ReasonNoContext)
	}
	global := tc.GlobalRole()
	if req.GlobalRole != "" && global.Rank() < req.GlobalRole.Rank() {
		return Deny(ReasonInsufficientRole)
	}
	if global.BypassesOrgChecks() {
		return Decision{Allowed: true, GlobalBypass: true}
	}
	if req.OrgID != "" && !tc.HasActiveMembership(req.OrgID) {
		return Deny(ReasonNotMember)
	}
	if req.Role == "" {
		return Allow()
	}
	target := req.OrgID
	if target == "" {
		target = tc.Selected()
	}
	if target == "" {
		return Deny(ReasonNoSelection)
	}
	if !tc.HasActiveMembership(target) {
		return Deny(ReasonNotMember)
	}
	held, _ := tc.RoleIn(target)
	if !held.AtLeast(req.Role) {
		return Deny(ReasonInsufficientRole)
	}
	return Allow()
}

// Guard is the server-side access check: CanAccess followed by the organization policy overlay,
// which can only turn an Allow into a Deny.
type Guard struct {
	policies  engine.Evaluator
	decisions metric.Int64Counter
	hooks     []DecisionHook
}

// DecisionHook observes every decision made by Guard.Check, e.g. to audit denials. Hooks run
// synchronously on the request path.
type DecisionHook func(ctx context.Context, tc *tenantctx.Context, req Requirement, d Decision)

// NewGuard returns a Guard. policies may be nil to disable the overlay.
func NewGuard(policies engine.Evaluator) *Guard {
	g := &Guard{policies: policies}
	g.decisions, _ = otel.Meter("tenant-core/internal/platform/rbac").Int64Counter("tenant.access.decisions",
		metric.WithDescription("Access guard decisions by outcome and reason"))
	return g
}

// OnDecision registers hooks and returns g.
func (g *Guard) OnDecision(hooks ...DecisionHook) *Guard {
	g.hooks = append(g.hooks, hooks...)
	return g
}

// Check evaluates req for tc. Policy evaluation failures are logged and leave the built-in
// decision in place.
func (g *Guard) Check(ctx context.Context, tc *tenantctx.Context, req Requirement) Decision {
	d := CanAccess(tc, req)
	if d.Allowed && !d.GlobalBypass && g.policies != nil {
		d = g.overlay(ctx, tc, req, d)
	}
	if g.decisions != nil {
		g.decisions.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("allowed", d.Allowed),
			attribute.String("reason", d.Reason),
		))
	}
	for _, h := range g.hooks {
		h(ctx, tc, req, d)
	}
	return d
}

func (g *Guard) overlay(ctx context.Context, tc *tenantctx.Context, req Requirement, d Decision) Decision {
	orgID := req.OrgID
	if orgID == "" {
		orgID = tc.Selected()
	}
	if orgID == "" {
		return d
	}
	org, _ := tc.Organization(orgID)
	res, err := g.policies.EvaluateAccess(ctx, engine.AccessInput{
		UserID:       tc.UserID(),
		GlobalRole:   string(tc.GlobalRole()),
		OrgID:        orgID,
		Role:         string(org.Role),
		RoleRank:     org.Role.Rank(),
		Status:       string(org.Status),
		RequiredRole: string(req.Role),
		RequiredRank: req.Role.Rank(),
		Action:       string(req.Action),
	})
	if err != nil {
		log.Printf("rbac: policy overlay for org %s failed: %v", orgID, err)
		return d
	}
	if res.Denied {
		reason := ReasonPolicy
		if len(res.Reasons) > 0 {
			reason += ": " + strings.Join(res.Reasons, "; ")
		}
		return Deny(reason)
	}
	return d
}
