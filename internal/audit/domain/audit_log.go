package domain

import "time"

// Audit actions recorded by this service.
const (
	ActionAccessDenied       = "access_denied"
	ActionMembershipConflict = "membership_conflict"
)

// AuditLog represents an audit event. OrgID is a sentinel for events with no organization.
type AuditLog struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	Resource  string    `db:"resource"`
	IP        string    `db:"ip"`
	Metadata  string    `db:"metadata"`
	CreatedAt time.Time `db:"created_at"`
}
