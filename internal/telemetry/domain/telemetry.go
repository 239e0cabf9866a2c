package domain

import (
	"encoding/json"
	"time"
)

// Event types emitted by this service.
const (
	EventTypeGRPCRequest        = "grpc_request"
	EventTypeHTTPRequest        = "http_request"
	EventTypeAccessDecision     = "access_decision"
	EventTypeMembershipConflict = "membership_conflict"
)

// Event is a telemetry event (org-scoped when an organization is known). The JSON shape is what
// Kafka carries and what the Loki worker parses.
type Event struct {
	OrgID     string          `json:"orgId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	EventType string          `json:"eventType"`
	Source    string          `json:"source"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewEvent returns an event stamped now, with metadata marshalled to JSON. Marshalling failures
// leave Metadata empty.
func NewEvent(eventType, source string, metadata interface{}) *Event {
	e := &Event{EventType: eventType, Source: source, CreatedAt: time.Now().UTC()}
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			e.Metadata = b
		}
	}
	return e
}
