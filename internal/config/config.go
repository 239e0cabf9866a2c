// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MinSelectionSecretLen is the minimum length of SELECTION_TOKEN_SECRET.
const MinSelectionSecretLen = 32

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// HTTPAddr is the address of the gin web-shell API (e.g. :8081). Empty disables HTTP.
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// UserDatabaseURL is the Postgres DSN of the user dataset (users, organizations, memberships, audit).
	UserDatabaseURL string `mapstructure:"USER_DATABASE_URL"`
	// FeatureDatabaseURL is the Postgres DSN of the feature dataset (org_memberships, access_policies).
	FeatureDatabaseURL string `mapstructure:"FEATURE_DATABASE_URL"`
	// StoreQueryTimeout bounds each dataset query during a resolution (e.g. "2s").
	StoreQueryTimeout string `mapstructure:"STORE_QUERY_TIMEOUT"`

	// JWTPublicKey is the PEM-encoded public key (or path) of the identity service; access tokens are verified with it.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	// JWTPrivateKey is only read by cmd/seed to mint a development access token.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	JWTIssuer     string `mapstructure:"JWT_ISSUER"`
	JWTAudience   string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the lifetime of development tokens minted by cmd/seed.
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`

	// SelectionTokenSecret signs the opaque organization-selection token (HS256, >= 32 bytes).
	SelectionTokenSecret string `mapstructure:"SELECTION_TOKEN_SECRET"`
	// SelectionTokenTTL is how long a selection survives (e.g. "12h").
	SelectionTokenTTL string `mapstructure:"SELECTION_TOKEN_TTL"`

	// PolicyOverlayEnabled turns on per-organization Rego policies on top of the built-in access rules.
	PolicyOverlayEnabled bool `mapstructure:"POLICY_OVERLAY_ENABLED"`

	// OTel exporter (optional). Empty endpoint keeps providers in-process.
	OTELEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTELInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTELServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	// Env is the application environment ("development", "production").
	Env string `mapstructure:"APP_ENV"`

	// Telemetry (optional). When Kafka brokers are set, request and access-decision events go to Kafka.
	// TelemetryKafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	TelemetryKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	TelemetryKafkaTopic   string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`

	// TrustedProxies is a comma-separated list of proxy IPs/CIDRs whose X-Forwarded-For the HTTP
	// API honours. Empty trusts none.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// Worker-only: Loki URL the telemetry worker pushes to (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the telemetry worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
	// WorkerEventTypes is a comma-separated list of event types the worker forwards; empty forwards all.
	WorkerEventTypes string `mapstructure:"WORKER_EVENT_TYPES"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("HTTP_ADDR", ":8081")
	v.SetDefault("USER_DATABASE_URL", "")
	v.SetDefault("FEATURE_DATABASE_URL", "")
	v.SetDefault("STORE_QUERY_TIMEOUT", "2s")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_ISSUER", "identity")
	v.SetDefault("JWT_AUDIENCE", "tenant-core")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("SELECTION_TOKEN_SECRET", "")
	v.SetDefault("SELECTION_TOKEN_TTL", "12h")
	v.SetDefault("POLICY_OVERLAY_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "tenant-core")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "tenant-core-telemetry")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("KAFKA_GROUP_ID", "tenant-core-telemetry-worker")
	v.SetDefault("WORKER_EVENT_TYPES", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}
	if cfg.SelectionTokenSecret != "" && len(cfg.SelectionTokenSecret) < MinSelectionSecretLen {
		return nil, errors.New("config: SELECTION_TOKEN_SECRET must be at least 32 bytes")
	}
	if cfg.IsProduction() {
		if cfg.SelectionTokenSecret == "" {
			return nil, errors.New("config: SELECTION_TOKEN_SECRET is required when APP_ENV=production")
		}
		if cfg.JWTPublicKey == "" {
			return nil, errors.New("config: JWT_PUBLIC_KEY is required when APP_ENV=production")
		}
	}
	return &cfg, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// QueryTimeout parses StoreQueryTimeout. Returns 2s if unset or invalid.
func (c *Config) QueryTimeout() time.Duration {
	return parseDuration(c.StoreQueryTimeout, 2*time.Second)
}

// SelectionTTL parses SelectionTokenTTL. Returns 12h if unset or invalid.
func (c *Config) SelectionTTL() time.Duration {
	return parseDuration(c.SelectionTokenTTL, 12*time.Hour)
}

// AccessTTL parses JWTAccessTTL. Returns 15m if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	return parseDuration(c.JWTAccessTTL, 15*time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// TelemetryKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// An empty list means telemetry to Kafka is disabled.
func (c *Config) TelemetryKafkaBrokersList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.TelemetryKafkaBrokers)
}

// WorkerEventTypesList returns the event types the worker forwards; nil means all.
func (c *Config) WorkerEventTypesList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.WorkerEventTypes)
}

// TrustedProxiesList returns the proxies the HTTP API trusts; nil trusts none.
func (c *Config) TrustedProxiesList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
