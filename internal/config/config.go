// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageDriver selects where the two persistence slots live:
	// "file" (default) or "postgres".
	StorageDriver string

	// DataDir is the directory for the file storage driver. Defaults to "./data".
	DataDir string

	// DatabaseURL is the Postgres connection string.
	// Required when StorageDriver is "postgres".
	DatabaseURL string

	// OpenAIKey is the API key for the AI itinerary collaborator. Required.
	OpenAIKey string

	// OpenAIModel is the chat model used for generation.
	// Defaults to "gpt-4o-mini".
	OpenAIModel string

	// DefaultLanguage is the interface language used when no preference has
	// been stored yet. Defaults to "en".
	DefaultLanguage string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, and
// rejects unknown storage drivers.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageDriver:   getEnv("STORAGE_DRIVER", StorageFile),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
	}

	if cfg.StorageDriver != StorageFile && cfg.StorageDriver != StoragePostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", cfg.StorageDriver, StorageFile, StoragePostgres)
	}

	var missing []string

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
