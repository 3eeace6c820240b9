package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the depot application.
type Config struct {
	CustomersFile   string
	ParcelsFile     string
	EventLogFile    string
	ReportFile      string
	HTTPPort        string
	ProcessSchedule string
	ReportDBDSN     string
	LogLevel        slog.Level
}

// LoadConfig reads the configuration from the environment after seeding it
// from envFile. A missing envFile is not an error; variables already set in
// the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading %s file: %w", envFile, err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return Config{
		CustomersFile:   envOrDefault("CUSTOMERS_FILE", "resources/customers.csv"),
		ParcelsFile:     envOrDefault("PARCELS_FILE", "resources/parcels.csv"),
		EventLogFile:    envOrDefault("EVENT_LOG_FILE", "resources/eventsLog.txt"),
		ReportFile:      envOrDefault("REPORT_FILE", "resources/report.txt"),
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		ProcessSchedule: os.Getenv("PROCESS_SCHEDULE"),
		ReportDBDSN:     os.Getenv("REPORT_DB_DSN"),
		LogLevel:        level,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
