// Package worker forwards telemetry events from Kafka to Loki.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"tenant-core/internal/telemetry/domain"
)

// Reader is the part of *kafka.Reader the forwarder uses.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Pusher sends one log line to Loki; *loki.Client implements it.
type Pusher interface {
	Push(ctx context.Context, ts time.Time, line string, labels map[string]string) error
}

// promoted lists the metadata keys copied into stream labels, per event type. Only low-cardinality
// keys belong here.
var promoted = map[string][]string{
	domain.EventTypeGRPCRequest:        {"status_code"},
	domain.EventTypeHTTPRequest:        {"status_code"},
	domain.EventTypeAccessDecision:     {"allowed"},
	domain.EventTypeMembershipConflict: {"winner_source"},
}

const (
	pushTimeout  = 10 * time.Second
	fetchBackoff = time.Second
)

// Forwarder reads events from Kafka and pushes each one as a Loki line.
type Forwarder struct {
	reader Reader
	pusher Pusher
	types  map[string]bool
}

// New returns a Forwarder. eventTypes restricts which events are pushed; empty forwards all.
// Filtered messages are still committed.
func New(reader Reader, pusher Pusher, eventTypes []string) *Forwarder {
	f := &Forwarder{reader: reader, pusher: pusher}
	if len(eventTypes) > 0 {
		f.types = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			f.types[t] = true
		}
	}
	return f
}

// Run forwards until ctx is cancelled. Each message is committed after its push attempt, whether
// or not the push succeeded.
func (f *Forwarder) Run(ctx context.Context) error {
	for {
		msg, err := f.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("worker: kafka read error: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchBackoff):
			}
			continue
		}
		if _, err := f.Forward(ctx, msg); err != nil {
			log.Printf("worker: loki push failed (offset %d): %v", msg.Offset, err)
		}
		if err := f.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Printf("worker: commit offset %d: %v", msg.Offset, err)
		}
	}
}

type envelope struct {
	OrgID     string                 `json:"orgId"`
	EventType string                 `json:"eventType"`
	Source    string                 `json:"source"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Forward pushes one message and reports whether it was pushed. Unparseable payloads are pushed
// verbatim at the current time when no event filter is set.
func (f *Forwarder) Forward(ctx context.Context, msg kafka.Message) (bool, error) {
	ts := time.Now().UTC()
	var e envelope
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		if f.types != nil {
			return false, nil
		}
		return true, f.push(ctx, ts, msg.Value, nil)
	}
	if f.types != nil && !f.types[e.EventType] {
		return false, nil
	}
	if !e.CreatedAt.IsZero() {
		ts = e.CreatedAt
	}
	return true, f.push(ctx, ts, msg.Value, Labels(e.EventType, e.OrgID, e.Source, e.Metadata))
}

func (f *Forwarder) push(ctx context.Context, ts time.Time, line []byte, labels map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()
	return f.pusher.Push(ctx, ts, string(line), labels)
}

// Labels returns the stream labels for an event: organization, type, source and the promoted
// metadata keys for its type.
func Labels(eventType, orgID, source string, metadata map[string]interface{}) map[string]string {
	labels := map[string]string{
		"org_id":     orgID,
		"event_type": eventType,
		"source":     source,
	}
	for _, k := range promoted[eventType] {
		if v, ok := metadata[k]; ok && v != nil {
			labels[k] = fmt.Sprint(v)
		}
	}
	return labels
}
