package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/membership/store"
	teldomain "tenant-core/internal/telemetry/domain"
)

// recordingEmitter collects events; done is signalled after each Emit.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*teldomain.Event
	err    error
	done   chan struct{}
}

func newRecordingEmitter() *recordingEmitter {
	return &recordingEmitter{done: make(chan struct{}, 16)}
}

func (r *recordingEmitter) Emit(_ context.Context, e *teldomain.Event) error {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func (r *recordingEmitter) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emit")
	}
}

func (r *recordingEmitter) snapshot() []*teldomain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*teldomain.Event(nil), r.events...)
}

func TestEmitAsync_NilArgumentsDoNothing(t *testing.T) {
	EmitAsync(nil, &teldomain.Event{EventType: "x"})
	rec := newRecordingEmitter()
	EmitAsync(rec, nil)
	time.Sleep(20 * time.Millisecond)
	if n := len(rec.snapshot()); n != 0 {
		t.Errorf("emitted %d events, want 0", n)
	}
}

func TestEmitAsync_DeliversEvent(t *testing.T) {
	rec := newRecordingEmitter()
	rec.err = errors.New("broker down")
	EmitAsync(rec, &teldomain.Event{OrgID: "orgA", EventType: teldomain.EventTypeGRPCRequest})
	rec.wait(t)
	got := rec.snapshot()
	if len(got) != 1 || got[0].OrgID != "orgA" {
		t.Fatalf("events = %+v", got)
	}
}

func TestFanout_SkipsNilAndJoinsErrors(t *testing.T) {
	a, b := newRecordingEmitter(), newRecordingEmitter()
	b.err = errors.New("b failed")
	em := Fanout(a, nil, b)
	err := em.Emit(context.Background(), &teldomain.Event{EventType: "x"})
	if err == nil || !errors.Is(err, b.err) {
		t.Fatalf("err = %v, want wrapped b error", err)
	}
	if len(a.snapshot()) != 1 || len(b.snapshot()) != 1 {
		t.Error("every emitter should receive the event")
	}
}

func TestNewEvent_MarshalsMetadata(t *testing.T) {
	e := teldomain.NewEvent(teldomain.EventTypeAccessDecision, "http", map[string]bool{"allowed": true})
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
	var md map[string]bool
	if err := json.Unmarshal(e.Metadata, &md); err != nil || !md["allowed"] {
		t.Errorf("metadata = %s (%v)", e.Metadata, err)
	}
}

func TestConflictReporter_EmitsConflictEvent(t *testing.T) {
	rec := newRecordingEmitter()
	r := NewConflictReporter(rec)
	winner := &domain.Row{Membership: domain.Membership{OrgID: "orgA", Role: domain.RoleAdmin, Status: domain.StatusActive, Source: domain.SourceUser}}
	loser := &domain.Row{Membership: domain.Membership{OrgID: "orgA", Role: domain.RoleMember, Status: domain.StatusActive, Source: domain.SourceFeature}}
	r.ReportConflict(context.Background(), store.Conflict{UserID: "u1", OrgID: "orgA", Winner: winner, Loser: loser})
	rec.wait(t)
	got := rec.snapshot()[0]
	if got.EventType != teldomain.EventTypeMembershipConflict || got.OrgID != "orgA" || got.UserID != "u1" {
		t.Fatalf("event = %+v", got)
	}
	var md conflictMetadata
	if err := json.Unmarshal(got.Metadata, &md); err != nil {
		t.Fatal(err)
	}
	if md.WinnerRole != "ADMIN" || md.LoserSource != "feature" {
		t.Errorf("metadata = %+v", md)
	}
}

func TestConflictReporter_NilSafe(t *testing.T) {
	var r *ConflictReporter
	r.ReportConflict(context.Background(), store.Conflict{})
	NewConflictReporter(nil).ReportConflict(context.Background(), store.Conflict{OrgID: "x"})
}
