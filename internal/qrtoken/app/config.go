package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	httpapi "github.com/aussiebroadwan/qrtoken/internal/qrtoken/http"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/httpx"
)

// DefaultTargetURL is where the issuer delivers records.
const DefaultTargetURL = "http://localhost:3000"

// IssuerConfig configures the one-shot issuer. TargetURL, TokenTTL and
// TokenLength are fixed and not read from the environment.
type IssuerConfig struct {
	TargetURL   string
	TokenTTL    time.Duration
	TokenLength int

	EmployeeID int64  // Subject the token is issued for (default: 1)
	Strict     bool   // Return delivery failures as errors (default: false)
	Env        string // Environment (dev, staging, prod) (default: dev)
	LogLevel   string // Log level (debug, info, warn, error) (default: info)
	LogFormat  string // Log format (json, text) (default: text)
}

func LoadIssuerConfig() IssuerConfig {
	return IssuerConfig{
		TargetURL:   DefaultTargetURL,
		TokenTTL:    domain.DefaultTokenTTL,
		TokenLength: cryptox.DefaultTokenLength,

		EmployeeID: getEnvInt64OrDefault("QRTOKEN_EMPLOYEE_ID", domain.DefaultEmployeeID),
		Strict:     getEnvBoolOrDefault("QRTOKEN_STRICT", false),
		Env:        getEnvOrDefault("ENV", "dev"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

// ServerConfig configures the collaborator server.
type ServerConfig struct {
	DatabaseFile         string        // Path to SQLite database file (default: ./qrtoken.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 3000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	Retention            time.Duration // How long expired tokens are kept (default: 24h)
	RateLimits           httpapi.RateLimits
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		DatabaseFile:         getEnvOrDefault("QRTOKEN_DATABASE_FILE", "qrtoken.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		Retention:            getEnvDurationOrDefault("QRTOKEN_RETENTION", 24*time.Hour),
		RateLimits: httpapi.RateLimits{
			Write:  httpx.ParseRateLimitFromEnv("WRITE", httpx.WriteLimit),
			Read:   httpx.ParseRateLimitFromEnv("READ", httpx.ReadLimit),
			Health: httpx.ParseRateLimitFromEnv("HEALTH", httpx.HealthLimit),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
