package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings for the CLI and the local server.
type Config struct {
	Port            int
	StructuresFile  string // optional override for the built-in structure table
	ScenarioWorkers int
	LogLevel        string
	LogFormat       string
}

// Load reads an optional .env file, then environment variables with defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 3000),
		StructuresFile:  os.Getenv("STRUCTURES_FILE"),
		ScenarioWorkers: getEnvInt("SCENARIO_WORKERS", 4),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ScenarioWorkers < 1 {
		return nil, fmt.Errorf("SCENARIO_WORKERS must be >= 1, got %d", cfg.ScenarioWorkers)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", value)
		return defaultValue
	}
	return intVal
}
