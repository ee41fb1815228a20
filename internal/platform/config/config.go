package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "ims/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	TokenTTL      time.Duration

	// DatabaseURL selects Postgres-backed stores when set; in-memory otherwise.
	DatabaseURL string
	Redis       RedisConfig
	Kafka       KafkaConfig

	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	SecureCookies      bool
	RateLimit          RateLimitConfig

	// SeedAdmin bootstraps an admin login on an empty user store.
	SeedAdminUsername string
	SeedAdminPassword string
}

// RedisConfig holds connection settings for the token revocation list.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RateLimitConfig sets per-minute budgets per client IP.
type RateLimitConfig struct {
	Disabled       bool
	AuthPerMinute  int
	WritePerMinute int
}

// KafkaConfig holds broker and topic settings. Empty Brokers disables Kafka.
type KafkaConfig struct {
	Brokers            []string
	NotificationsTopic string
	AuditTopic         string
	RelayInterval      time.Duration
	RelayBatchSize     int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:     envOr("IMS_ADDR", ":8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),

		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     envOr("JWT_ISSUER", "ims"),
		JWTAudience:   envOr("JWT_AUDIENCE", "ims-api"),
		TokenTTL:      envDuration("JWT_TTL", 8*time.Hour),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:            envList("KAFKA_BROKERS"),
			NotificationsTopic: envOr("KAFKA_NOTIFICATIONS_TOPIC", "ims.notifications"),
			AuditTopic:         envOr("KAFKA_AUDIT_TOPIC", "ims.audit"),
			RelayInterval:      envDuration("AUDIT_RELAY_INTERVAL", 2*time.Second),
			RelayBatchSize:     envInt("AUDIT_RELAY_BATCH_SIZE", 100),
		},

		CORSAllowedOrigins: envListOr("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RequestTimeout:     envDuration("REQUEST_TIMEOUT", 30*time.Second),
		SecureCookies:      envBool("SECURE_COOKIES", false),
		RateLimit: RateLimitConfig{
			Disabled:       envBool("RATE_LIMIT_DISABLED", false),
			AuthPerMinute:  envInt("RATE_LIMIT_AUTH_PER_MINUTE", 10),
			WritePerMinute: envInt("RATE_LIMIT_WRITE_PER_MINUTE", 60),
		},

		SeedAdminUsername: os.Getenv("SEED_ADMIN_USERNAME"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envList(key string) []string {
	return platformstrings.SplitList(os.Getenv(key), ",")
}

func envListOr(key string, fallback []string) []string {
	if v := envList(key); len(v) > 0 {
		return v
	}
	return fallback
}
