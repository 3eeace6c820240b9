package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"depot/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CUSTOMERS_FILE", "PARCELS_FILE", "EVENT_LOG_FILE", "REPORT_FILE",
	"HTTP_PORT", "PROCESS_SCHEDULE", "REPORT_DB_DSN", "LOG_LEVEL",
}

// clearConfigEnv unsets every config key for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, cmd.Config{
		CustomersFile: "resources/customers.csv",
		ParcelsFile:   "resources/parcels.csv",
		EventLogFile:  "resources/eventsLog.txt",
		ReportFile:    "resources/report.txt",
		HTTPPort:      "8080",
		LogLevel:      slog.LevelInfo,
	}, cfg)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	clearConfigEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"HTTP_PORT=9090\nPROCESS_SCHEDULE=*/5 * * * * *\nLOG_LEVEL=debug\nREPORT_FILE=/tmp/from-file.txt\n"), 0o600))
	t.Setenv("REPORT_FILE", "/tmp/from-env.txt")

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "*/5 * * * * *", cfg.ProcessSchedule)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/from-env.txt", cfg.ReportFile)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
