// Package config loads the gateway configuration from the
// environment. Every knob has a default; only the Supabase
// coordinates are mandatory (enforced at startup).
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the gateway's runtime configuration.
type Config struct {
	Port     int
	LogLevel string

	// Timeout for calls to the order/settings backend.
	HTTPTimeout time.Duration

	// Resilience parameters for the backend client.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// TTL for the cached merchant settings.
	CacheTTL time.Duration

	OTLPEndpoint string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string

	// AdminPasswordHash is the bcrypt hash of the admin password
	// guarding the settings surface. Empty disables admin access.
	AdminPasswordHash string
	JWTSecret         string
	JWTAccessTTL      time.Duration
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     envInt("PORT", 8080),
		LogLevel: env("LOG_LEVEL", "info"),

		HTTPTimeout: envDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:     envInt("MAX_RETRIES", 3),
		InitialBackoff: envDuration("INITIAL_BACKOFF", 100*time.Millisecond),
		MaxConcurrency: envInt("MAX_CONCURRENCY", 50),

		CacheTTL: envDuration("CACHE_TTL", 5*time.Minute),

		OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		SupabaseURL:        env("SUPABASE_URL", ""),
		SupabaseAnonKey:    env("SUPABASE_ANON_KEY", ""),
		SupabaseServiceKey: env("SUPABASE_SERVICE_ROLE_KEY", ""),

		AdminPasswordHash: env("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         env("JWT_SECRET", "boleto-default-dev-secret-change-me"),
		JWTAccessTTL:      envDuration("JWT_ACCESS_TTL", 15*time.Minute),
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
