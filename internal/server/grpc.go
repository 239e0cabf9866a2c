package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	tenantv1 "tenant-core/api/tenant/v1"
	"tenant-core/internal/security"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/telemetry"
	"tenant-core/internal/tenant"
	tenanthandler "tenant-core/internal/tenant/handler"
)

// Deps holds the dependencies shared by the gRPC and HTTP transports.
type Deps struct {
	// Tenant serves the tenant operations. If nil, TenantService methods return Unavailable.
	Tenant *tenant.Service
	// Verifier validates access tokens. If nil, every protected call is rejected.
	Verifier *security.AccessVerifier
	// Health is the grpc.health.v1 server updated by the readiness checker. If nil, Health is not registered.
	Health *health.Server
	// Telemetry receives request events. If nil, no request telemetry is emitted.
	Telemetry telemetry.EventEmitter
}

// publicMethods are served without a Bearer token.
var publicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName: true,
}

// RegisterServices registers the gRPC services with s.
//
//   - tenant.v1.TenantService → internal/tenant/handler
//   - grpc.health.v1.Health   → google.golang.org/grpc/health, driven by internal/health
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	tenantv1.RegisterTenantServiceServer(s, tenanthandler.NewServer(deps.Tenant))
	if deps.Health != nil {
		healthpb.RegisterHealthServer(s, deps.Health)
	}
}

// NewGRPCServer returns a server with OTel instrumentation, authentication and request
// telemetry installed, and all services registered.
func NewGRPCServer(deps Deps, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.AuthUnary(deps.Verifier, publicMethods),
			interceptors.TelemetryUnary(deps.Telemetry, publicMethods),
		),
	}, opts...)
	s := grpc.NewServer(opts...)
	RegisterServices(s, deps)
	return s
}
