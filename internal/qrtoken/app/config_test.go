package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/qrtoken/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoadIssuerConfig_Defaults(t *testing.T) {
	for _, key := range []string{"QRTOKEN_EMPLOYEE_ID", "QRTOKEN_STRICT", "ENV", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := LoadIssuerConfig()
	require.Equal(t, "http://localhost:3000", cfg.TargetURL)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 32, cfg.TokenLength)
	require.Equal(t, int64(1), cfg.EmployeeID)
	require.False(t, cfg.Strict)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoadIssuerConfig_Overrides(t *testing.T) {
	t.Setenv("QRTOKEN_EMPLOYEE_ID", "42")
	t.Setenv("QRTOKEN_STRICT", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg := LoadIssuerConfig()
	require.Equal(t, int64(42), cfg.EmployeeID)
	require.True(t, cfg.Strict)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadIssuerConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("QRTOKEN_EMPLOYEE_ID", "-4")
	t.Setenv("QRTOKEN_STRICT", "maybe")

	cfg := LoadIssuerConfig()
	require.Equal(t, int64(1), cfg.EmployeeID)
	require.False(t, cfg.Strict)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("QRTOKEN_DATABASE_FILE", "")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("QRTOKEN_RETENTION", "48h")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "bogus")
	t.Setenv("RATELIMIT_WRITE_BURST", "5")

	cfg := LoadServerConfig()
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, "qrtoken.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 48*time.Hour, cfg.Retention)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 5, cfg.RateLimits.Write.Burst)
	require.Equal(t, httpx.WriteLimit.RequestsPerWindow, cfg.RateLimits.Write.RequestsPerWindow)
	require.Equal(t, httpx.ReadLimit, cfg.RateLimits.Read)
}
