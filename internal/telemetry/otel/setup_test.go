package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		insecure     bool
		wantHost     string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host port", "collector:4317", false, "collector:4317", true, false},
		{"http", "http://localhost:4317", false, "localhost:4317", true, false},
		{"https uses tls", "https://otel.example.com:4317", false, "otel.example.com:4317", false, false},
		{"https forced insecure", "https://otel.example.com:4317", true, "otel.example.com:4317", true, false},
		{"path dropped", "http://collector:4317/v1/traces", false, "collector:4317", true, false},
		{"missing host", "http://", false, "", false, true},
		{"malformed", "http://[bad", false, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndpoint(tt.endpoint, tt.insecure)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEndpoint(%q) = %+v, want error", tt.endpoint, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEndpoint(%q): %v", tt.endpoint, err)
			}
			if got.HostPort != tt.wantHost || got.Insecure != tt.wantInsecure {
				t.Errorf("ParseEndpoint(%q) = %+v, want host %q insecure %v", tt.endpoint, got, tt.wantHost, tt.wantInsecure)
			}
		})
	}
}

func TestNewProviders_NoEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "   "} {
		p, err := NewProviders(context.Background(), endpoint, "tenant-core-test", false)
		if err != nil {
			t.Fatalf("NewProviders(%q): %v", endpoint, err)
		}
		if p.TracerProvider == nil || p.MeterProvider == nil || p.LoggerProvider == nil {
			t.Fatalf("NewProviders(%q) left a provider nil: %+v", endpoint, p)
		}
		if err := p.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	}
}

func TestNewProviders_InvalidEndpoint(t *testing.T) {
	if _, err := NewProviders(context.Background(), "http://", "svc", false); err == nil {
		t.Fatal("expected error for endpoint without host")
	}
}

func TestSetGlobal(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})
	p, err := NewProviders(context.Background(), "", "svc", false)
	if err != nil {
		t.Fatal(err)
	}
	p.SetGlobal()
	if otel.GetTracerProvider() != p.TracerProvider {
		t.Error("global tracer provider not installed")
	}
	if otel.GetMeterProvider() != p.MeterProvider {
		t.Error("global meter provider not installed")
	}
}
