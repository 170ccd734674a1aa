package config

import (
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all application configuration.
type Config struct {
	Input         InputConfig
	Output        OutputConfig
	Runtime       RuntimeConfig
	Observability ObservabilityConfig
}

// InputConfig describes where statement text files come from.
type InputConfig struct {
	Dir      string
	MaxBytes int64
}

// OutputConfig selects the report artifacts to write.
type OutputConfig struct {
	Dir        string
	WriteJSON  bool
	WriteCSV   bool
	WriteExcel bool
}

// RuntimeConfig tunes the batch runner.
type RuntimeConfig struct {
	Workers   int
	WatchSpec string // cron spec; empty disables watch mode
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	MetricsPort    int
	LogLevel       string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Input: InputConfig{
			Dir:      getEnv("STATEMENTS_DIR", "statements"),
			MaxBytes: int64(getEnvAsInt("PARSER_MAX_BYTES", 4<<20)),
		},
		Output: OutputConfig{
			Dir:        getEnv("OUTPUT_DIR", "output"),
			WriteJSON:  getEnvAsBool("OUTPUT_JSON", true),
			WriteCSV:   getEnvAsBool("OUTPUT_CSV", true),
			WriteExcel: getEnvAsBool("OUTPUT_XLSX", false),
		},
		Runtime: RuntimeConfig{
			Workers:   getEnvAsInt("PARSER_WORKERS", 4),
			WatchSpec: getEnv("WATCH_CRON", ""),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", false),
			MetricsPort:    getEnvAsInt("METRICS_PORT", 9090),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
		},
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
