package otel

import (
	"context"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"tenant-core/internal/telemetry/domain"
)

// captureLogger keeps the last emitted record.
type captureLogger struct {
	rec   otellog.Record
	count int
}

func (c *captureLogger) Emit(_ context.Context, rec otellog.Record) {
	c.rec = rec
	c.count++
}

func attrs(rec otellog.Record) map[string]string {
	out := map[string]string{}
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value.AsString()
		return true
	})
	return out
}

func TestNewEventEmitter_NilProviderIsNoop(t *testing.T) {
	em := NewEventEmitter(nil)
	if err := em.Emit(context.Background(), &domain.Event{OrgID: "org1"}); err != nil {
		t.Fatalf("noop Emit: %v", err)
	}
}

func TestNewEventEmitter_WithProvider(t *testing.T) {
	provider := sdklog.NewLoggerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	em := NewEventEmitter(provider)
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(nil): %v", err)
	}
	if err := em.Emit(context.Background(), domain.NewEvent(domain.EventTypeAccessDecision, "test", nil)); err != nil {
		t.Errorf("Emit: %v", err)
	}
}

func TestEmit_MapsFields(t *testing.T) {
	logger := &captureLogger{}
	em := NewEventEmitterWithLogger(logger)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := &domain.Event{
		OrgID: "orgA", UserID: "u1", SessionID: "s1",
		EventType: domain.EventTypeAccessDecision, Source: "grpc",
		Metadata: []byte(`{"allowed":false}`), CreatedAt: created,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if logger.count != 1 {
		t.Fatalf("emitted %d records, want 1", logger.count)
	}
	if got := string(logger.rec.Body().AsBytes()); got != `{"allowed":false}` {
		t.Errorf("body = %q", got)
	}
	if !logger.rec.Timestamp().Equal(created) {
		t.Errorf("timestamp = %v, want %v", logger.rec.Timestamp(), created)
	}
	want := map[string]string{
		"org_id": "orgA", "user_id": "u1", "session_id": "s1",
		"event_type": domain.EventTypeAccessDecision, "source": "grpc",
	}
	got := attrs(logger.rec)
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %s = %q, want %q", k, got[k], v)
		}
	}
	if logger.rec.Severity() != otellog.SeverityInfo {
		t.Errorf("severity = %v, want info", logger.rec.Severity())
	}
}

func TestEmit_SparseEvent(t *testing.T) {
	logger := &captureLogger{}
	em := NewEventEmitterWithLogger(logger)
	before := time.Now().UTC()
	if err := em.Emit(context.Background(), &domain.Event{EventType: domain.EventTypeMembershipConflict}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := logger.rec
	if !rec.Body().Empty() {
		t.Error("body should be empty without metadata")
	}
	if rec.Timestamp().Before(before) {
		t.Errorf("timestamp %v not defaulted to now", rec.Timestamp())
	}
	got := attrs(rec)
	if _, ok := got["org_id"]; ok {
		t.Error("empty org id should not become an attribute")
	}
	if rec.Severity() != otellog.SeverityWarn {
		t.Errorf("conflict severity = %v, want warn", rec.Severity())
	}
}
