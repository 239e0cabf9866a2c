package health

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

type stubPolicy struct{ err error }

func (s stubPolicy) HealthCheck(context.Context) error { return s.err }

func servingStatus(t *testing.T, srv *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Check(%q): %v", service, err)
	}
	return resp.GetStatus()
}

func TestChecker_AllHealthy(t *testing.T) {
	srv := health.NewServer()
	c := NewChecker(srv, "tenant.v1.TenantService").
		AddPinger("user dataset", stubPinger{}).
		AddPinger("feature dataset", nil).
		AddPolicyChecker("policy engine", stubPolicy{})

	if ready, _ := c.Status(); ready {
		t.Fatal("should not be ready before the first check")
	}
	if err := c.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ready, err := c.Status(); !ready || err != nil {
		t.Errorf("Status = %v, %v", ready, err)
	}
	for _, svc := range []string{"", "tenant.v1.TenantService"} {
		if got := servingStatus(t, srv, svc); got != healthpb.HealthCheckResponse_SERVING {
			t.Errorf("%q status = %v, want SERVING", svc, got)
		}
	}
}

func TestChecker_FailureMarksNotServing(t *testing.T) {
	srv := health.NewServer()
	dbErr := errors.New("connection refused")
	c := NewChecker(srv).
		AddPinger("user dataset", stubPinger{}).
		AddPinger("feature dataset", stubPinger{err: dbErr}).
		AddPolicyChecker("policy engine", stubPolicy{err: errors.New("compile")})

	err := c.Check(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want first failure wrapping %v", err, dbErr)
	}
	if ready, _ := c.Status(); ready {
		t.Error("should not be ready")
	}
	if got := servingStatus(t, srv, ""); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("status = %v, want NOT_SERVING", got)
	}
}

func TestChecker_NilServer(t *testing.T) {
	c := NewChecker(nil)
	if err := c.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ready, _ := c.Status(); !ready {
		t.Error("no checks should mean ready")
	}
}
