package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	tenantv1 "tenant-core/api/tenant/v1"
	"tenant-core/internal/audit"
	auditrepo "tenant-core/internal/audit/repository"
	"tenant-core/internal/config"
	"tenant-core/internal/db"
	healthcheck "tenant-core/internal/health"
	"tenant-core/internal/membership/domain"
	membershiprepo "tenant-core/internal/membership/repository"
	"tenant-core/internal/membership/resolver"
	"tenant-core/internal/membership/store"
	orgrepo "tenant-core/internal/organization/repository"
	"tenant-core/internal/platform/rbac"
	"tenant-core/internal/policy/engine"
	policyrepo "tenant-core/internal/policy/repository"
	"tenant-core/internal/security"
	"tenant-core/internal/server"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/telemetry"
	telemetryotel "tenant-core/internal/telemetry/otel"
	"tenant-core/internal/telemetry/producer"
	"tenant-core/internal/tenant"
	"tenant-core/internal/tenantctx"
	userrepo "tenant-core/internal/user/repository"
)

const healthInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTELEndpoint, cfg.OTELServiceName, cfg.OTELInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	var kafkaProducer *producer.KafkaProducer
	emitters := []telemetry.EventEmitter{telemetryotel.NewEventEmitter(providers.LoggerProvider)}
	if kafkaProducer = producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic); kafkaProducer != nil {
		emitters = append(emitters, kafkaProducer)
		log.Printf("telemetry: producing to kafka topic %s", cfg.TelemetryKafkaTopic)
	}
	emitter := telemetry.Fanout(emitters...)

	grpcHealth := health.NewServer()
	checker := healthcheck.NewChecker(grpcHealth, tenantv1.ServiceName)

	// User dataset: users, organizations, memberships, audit logs.
	var (
		userMemberships membershiprepo.Repository
		users           resolver.UserGetter
		orgs            resolver.OrgLister
		auditLogs       auditrepo.Repository
	)
	if cfg.UserDatabaseURL != "" {
		userDB, err := db.OpenUserDataset(cfg.UserDatabaseURL)
		if err != nil {
			log.Fatalf("user dataset: %v", err)
		}
		defer userDB.Close()
		userMemberships = membershiprepo.NewPostgresRepository(userDB)
		users = userrepo.NewPostgresRepository(userDB)
		orgs = orgrepo.NewPostgresRepository(userDB)
		auditLogs = auditrepo.NewPostgresRepository(userDB)
		checker.AddPinger("user dataset", userDB)
	} else {
		log.Println("user dataset: USER_DATABASE_URL not set; using an empty in-memory dataset")
		userMemberships = membershiprepo.NewMemoryRepository(domain.SourceUser)
		users = userrepo.NewMemoryRepository()
		orgs = orgrepo.NewMemoryRepository()
		auditLogs = auditrepo.NewMemoryRepository()
	}

	// Feature dataset: org_memberships and access_policies.
	var (
		featureMemberships membershiprepo.Repository
		policies           policyrepo.Repository
	)
	if cfg.FeatureDatabaseURL != "" {
		featureDB, featureConn, err := db.OpenFeatureDataset(cfg.FeatureDatabaseURL)
		if err != nil {
			log.Fatalf("feature dataset: %v", err)
		}
		defer featureConn.Close()
		featureMemberships = membershiprepo.NewGormRepository(featureDB)
		policies = policyrepo.NewGormRepository(featureDB)
		checker.AddPinger("feature dataset", featureConn)
	} else {
		log.Println("feature dataset: FEATURE_DATABASE_URL not set; using an empty in-memory dataset")
		featureMemberships = membershiprepo.NewMemoryRepository(domain.SourceFeature)
		policies = policyrepo.NewMemoryRepository()
	}

	auditLogger := audit.NewLogger(auditLogs, interceptors.ClientIP)
	memberships := store.New(userMemberships, featureMemberships,
		store.WithQueryTimeout(cfg.QueryTimeout()),
		store.WithConflictReporter(telemetry.NewConflictReporter(emitter), audit.NewConflictAuditor(auditLogger)),
	)
	res := resolver.New(memberships, users, orgs)

	codec, err := security.NewSelectionCodec(selectionSecret(cfg), cfg.SelectionTTL())
	if err != nil {
		log.Fatalf("selection token: %v", err)
	}
	builder := tenantctx.NewBuilder(res, codec)

	var evaluator engine.Evaluator
	if cfg.PolicyOverlayEnabled {
		opa := engine.NewOPAEvaluator(policies)
		checker.AddPolicyChecker("policy engine", opa)
		evaluator = opa
	}
	guard := rbac.NewGuard(evaluator).OnDecision(
		server.AuditDenials(auditLogger),
		server.EmitDecisions(emitter),
	)

	verifier, err := accessVerifier(cfg)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}
	if verifier == nil {
		log.Println("jwt: JWT_PUBLIC_KEY not set; every authenticated call will be rejected")
	}

	deps := server.Deps{
		Tenant:    tenant.NewService(builder, guard, auditLogs),
		Verifier:  verifier,
		Health:    grpcHealth,
		Telemetry: emitter,
	}

	go checker.Run(ctx, healthInterval)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	grpcServer := server.NewGRPCServer(deps)
	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	var httpServer *http.Server
	if cfg.HTTPAddr != "" {
		httpServer = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           server.NewHTTPRouter(deps, server.HTTPOptions{
				Readiness:      checker,
				SecureCookies:  cfg.IsProduction(),
				TrustedProxies: cfg.TrustedProxiesList(),
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("http: %v", err)
			}
		}()
	}

	<-ctx.Done()
	log.Println("shutting down...")
	grpcHealth.Shutdown()
	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("http shutdown: %v", err)
		}
		cancel()
	}
	grpcServer.GracefulStop()

	// Let in-flight async emits finish before the exporters go away.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			log.Printf("kafka producer close: %v", err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("otel shutdown: %v", err)
	}
	log.Println("stopped")
}

// selectionSecret returns SELECTION_TOKEN_SECRET, or a random per-process secret outside
// production; selections then do not survive a restart.
func selectionSecret(cfg *config.Config) []byte {
	if cfg.SelectionTokenSecret != "" {
		return []byte(cfg.SelectionTokenSecret)
	}
	secret := make([]byte, config.MinSelectionSecretLen)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("selection token: %v", err)
	}
	log.Println("selection token: SELECTION_TOKEN_SECRET not set; using a random secret for this process")
	return secret
}

func accessVerifier(cfg *config.Config) (*security.AccessVerifier, error) {
	if cfg.JWTPublicKey == "" {
		return nil, nil
	}
	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, err
	}
	return security.NewAccessVerifier(pub, cfg.JWTIssuer, cfg.JWTAudience), nil
}
