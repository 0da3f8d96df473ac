// Package config loads and validates application configuration from
// environment variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to
	// restrict it.
	CORSOrigins []string

	// MaxBodyBytes caps the size of incoming request bodies.
	// Defaults to 1 MiB. Set MAX_BODY_BYTES to override.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is read first when present; real
// environment variables always win over .env entries.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Best effort: no .env file is the normal case outside local dev.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be an integer: %w", err)
	}
	cfg.MaxBodyBytes = maxBody

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
