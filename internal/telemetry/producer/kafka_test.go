package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"tenant-core/internal/telemetry/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaProducer_DisabledWithoutBrokersOrTopic(t *testing.T) {
	if p := NewKafkaProducer(nil, "telemetry"); p != nil {
		t.Error("expected nil producer without brokers")
	}
	if p := NewKafkaProducer([]string{"localhost:9092"}, ""); p != nil {
		t.Error("expected nil producer without topic")
	}
	var p *KafkaProducer
	if err := p.Emit(context.Background(), &domain.Event{}); err != nil {
		t.Errorf("nil producer Emit: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil producer Close: %v", err)
	}
}

func TestKafkaProducer_EmitKeysByOrg(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaProducerWithWriter(w)
	e := &domain.Event{OrgID: "orgA", EventType: domain.EventTypeHTTPRequest, Source: "http", CreatedAt: time.Unix(1700000000, 0).UTC()}
	if err := p.Emit(context.Background(), e); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "orgA" {
		t.Errorf("key = %q, want orgA", w.msgs[0].Key)
	}
	var decoded domain.Event
	if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.EventType != e.EventType || !decoded.CreatedAt.Equal(e.CreatedAt) {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestKafkaProducer_EmitWithoutOrgHasNoKey(t *testing.T) {
	w := &fakeWriter{}
	if err := NewKafkaProducerWithWriter(w).Emit(context.Background(), &domain.Event{EventType: "x"}); err != nil {
		t.Fatal(err)
	}
	if w.msgs[0].Key != nil {
		t.Errorf("key = %q, want nil", w.msgs[0].Key)
	}
}

func TestKafkaProducer_WriteErrorAndClose(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := NewKafkaProducerWithWriter(w)
	if err := p.Emit(context.Background(), &domain.Event{EventType: "x"}); !errors.Is(err, w.err) {
		t.Errorf("err = %v, want writer error", err)
	}
	if err := p.Close(); err != nil || !w.closed {
		t.Errorf("Close err=%v closed=%v", err, w.closed)
	}
}

var _ Producer = (*KafkaProducer)(nil)
