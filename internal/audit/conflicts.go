package audit

import (
	"context"
	"encoding/json"

	"tenant-core/internal/audit/domain"
	"tenant-core/internal/membership/store"
)

type conflictMetadata struct {
	WinnerID     string `json:"winner_id"`
	WinnerSource string `json:"winner_source"`
	WinnerRole   string `json:"winner_role"`
	WinnerStatus string `json:"winner_status"`
	LoserID      string `json:"loser_id"`
	LoserSource  string `json:"loser_source"`
	LoserRole    string `json:"loser_role"`
	LoserStatus  string `json:"loser_status"`
}

// LogConflict records a membership_conflict entry for two disagreeing dataset rows.
func (l *Logger) LogConflict(ctx context.Context, c store.Conflict) {
	if c.Winner == nil || c.Loser == nil {
		return
	}
	md, _ := json.Marshal(conflictMetadata{
		WinnerID: c.Winner.ID, WinnerSource: string(c.Winner.Source), WinnerRole: string(c.Winner.Role), WinnerStatus: string(c.Winner.Status),
		LoserID: c.Loser.ID, LoserSource: string(c.Loser.Source), LoserRole: string(c.Loser.Role), LoserStatus: string(c.Loser.Status),
	})
	l.LogEvent(ctx, c.OrgID, c.UserID, domain.ActionMembershipConflict, "membership", string(md))
}

// ConflictAuditor writes cross-dataset membership conflicts to the audit log off the request path.
type ConflictAuditor struct {
	logger *Logger
}

// NewConflictAuditor returns a store.ConflictReporter backed by logger.
func NewConflictAuditor(logger *Logger) *ConflictAuditor {
	return &ConflictAuditor{logger: logger}
}

// ReportConflict writes asynchronously; the request's values (client IP) are kept but its
// cancellation is not.
func (a *ConflictAuditor) ReportConflict(ctx context.Context, c store.Conflict) {
	if a == nil || a.logger == nil {
		return
	}
	go a.logger.LogConflict(context.WithoutCancel(ctx), c)
}

var _ store.ConflictReporter = (*ConflictAuditor)(nil)
