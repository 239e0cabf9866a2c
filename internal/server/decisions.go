package server

import (
	"context"

	"tenant-core/internal/audit"
	"tenant-core/internal/platform/rbac"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/telemetry"
	teldomain "tenant-core/internal/telemetry/domain"
	"tenant-core/internal/tenantctx"
)

// decisionOrg is the organization a decision was about: the requested one, else the selection.
func decisionOrg(tc *tenantctx.Context, req rbac.Requirement) string {
	if req.OrgID != "" || tc == nil {
		return req.OrgID
	}
	return tc.Selected()
}

func decisionUser(tc *tenantctx.Context) string {
	if tc == nil {
		return ""
	}
	return tc.UserID()
}

// AuditDenials records every denied decision in the audit log.
func AuditDenials(logger *audit.Logger) rbac.DecisionHook {
	return func(ctx context.Context, tc *tenantctx.Context, req rbac.Requirement, d rbac.Decision) {
		if d.Allowed || logger == nil {
			return
		}
		logger.LogDenial(ctx, decisionOrg(tc, req), decisionUser(tc),
			audit.OperationName(interceptors.Operation(ctx)), d.Reason, string(req.Role))
	}
}

type decisionMetadata struct {
	Allowed      bool   `json:"allowed"`
	Reason       string `json:"reason,omitempty"`
	GlobalBypass bool   `json:"global_bypass,omitempty"`
	RequiredRole string `json:"required_role,omitempty"`
	Operation    string `json:"operation,omitempty"`
}

// EmitDecisions sends every decision to telemetry as an access_decision event.
func EmitDecisions(emitter telemetry.EventEmitter) rbac.DecisionHook {
	return func(ctx context.Context, tc *tenantctx.Context, req rbac.Requirement, d rbac.Decision) {
		if emitter == nil {
			return
		}
		e := teldomain.NewEvent(teldomain.EventTypeAccessDecision, "access_guard", decisionMetadata{
			Allowed:      d.Allowed,
			Reason:       d.Reason,
			GlobalBypass: d.GlobalBypass,
			RequiredRole: string(req.Role),
			Operation:    interceptors.Operation(ctx),
		})
		e.OrgID = decisionOrg(tc, req)
		e.UserID = decisionUser(tc)
		e.SessionID, _ = interceptors.GetSessionID(ctx)
		telemetry.EmitAsync(emitter, e)
	}
}
