package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// CoolGym backend
	BackendBaseURL string

	// HTTP client. The backend contract assumes a hard 8s cap per call.
	HTTPTimeout time.Duration

	// Locale drives Accept-Language and money formatting for invoices.
	Locale string

	// Fan-out
	MaxConcurrency int

	// SPA origin allowed by CORS.
	WebOrigin string

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BackendBaseURL: getEnv("COOLGYM_API_URL", "http://localhost:5022"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 8*time.Second),

		Locale: getEnv("LOCALE", "es-PE"),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 10),

		WebOrigin: getEnv("WEB_ORIGIN", "http://localhost:5173"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
