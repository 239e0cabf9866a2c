package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"tenant-core/internal/telemetry"
	"tenant-core/internal/telemetry/domain"
)

const instrumentationName = "tenant-core/telemetry"

// NewEventEmitter returns an EventEmitter that writes events as OTel log records through provider.
// A nil provider yields a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return NewEventEmitterWithLogger(provider.Logger(instrumentationName))
}

// RecordEmitter is the part of otellog.Logger the emitter uses.
type RecordEmitter interface {
	Emit(ctx context.Context, record otellog.Record)
}

// NewEventEmitterWithLogger wraps an existing logger; tests pass a capturing logger.
func NewEventEmitterWithLogger(logger RecordEmitter) telemetry.EventEmitter {
	return &logEmitter{logger: logger}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.Event) error { return nil }

type logEmitter struct {
	logger RecordEmitter
}

// Emit maps identifying fields to attributes and metadata to the body.
func (e *logEmitter) Emit(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return nil
	}
	var rec otellog.Record
	ts := event.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec.SetTimestamp(ts)
	rec.SetSeverity(severity(event.EventType))
	if len(event.Metadata) > 0 {
		rec.SetBody(otellog.BytesValue(event.Metadata))
	}
	for _, kv := range []struct{ key, val string }{
		{"org_id", event.OrgID},
		{"user_id", event.UserID},
		{"session_id", event.SessionID},
		{"event_type", event.EventType},
		{"source", event.Source},
	} {
		if kv.val != "" {
			rec.AddAttributes(otellog.String(kv.key, kv.val))
		}
	}
	e.logger.Emit(ctx, rec)
	return nil
}

// Conflicts are data problems someone should look at; everything else is informational.
func severity(eventType string) otellog.Severity {
	if eventType == domain.EventTypeMembershipConflict {
		return otellog.SeverityWarn
	}
	return otellog.SeverityInfo
}
