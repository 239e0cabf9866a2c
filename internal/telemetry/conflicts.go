package telemetry

import (
	"context"

	"tenant-core/internal/membership/store"
	"tenant-core/internal/telemetry/domain"
)

// ConflictReporter turns cross-dataset membership conflicts into telemetry events.
type ConflictReporter struct {
	emitter EventEmitter
}

// NewConflictReporter returns a store.ConflictReporter emitting through emitter.
func NewConflictReporter(emitter EventEmitter) *ConflictReporter {
	return &ConflictReporter{emitter: emitter}
}

type conflictMetadata struct {
	WinnerSource string `json:"winner_source"`
	WinnerRole   string `json:"winner_role"`
	WinnerStatus string `json:"winner_status"`
	LoserSource  string `json:"loser_source"`
	LoserRole    string `json:"loser_role"`
	LoserStatus  string `json:"loser_status"`
}

// ReportConflict emits asynchronously and never blocks the resolution.
func (r *ConflictReporter) ReportConflict(_ context.Context, c store.Conflict) {
	if r == nil || c.Winner == nil || c.Loser == nil {
		return
	}
	e := domain.NewEvent(domain.EventTypeMembershipConflict, "membership_store", conflictMetadata{
		WinnerSource: string(c.Winner.Source), WinnerRole: string(c.Winner.Role), WinnerStatus: string(c.Winner.Status),
		LoserSource: string(c.Loser.Source), LoserRole: string(c.Loser.Role), LoserStatus: string(c.Loser.Status),
	})
	e.OrgID, e.UserID = c.OrgID, c.UserID
	EmitAsync(r.emitter, e)
}

var _ store.ConflictReporter = (*ConflictReporter)(nil)
