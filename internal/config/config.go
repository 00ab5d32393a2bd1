// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the analyzer and the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// StartYear is the inclusive year cutoff for the commute filter.
	// Activities starting before this UTC year are excluded. Defaults to 2023.
	StartYear int

	// Timezone is the IANA zone name used to localize departure times
	// (e.g. "America/Los_Angeles", the default). Historical DST rules for
	// the zone are applied per calendar date.
	Timezone string

	// ActivitiesFile is the path of the pre-fetched activities JSON file.
	// Defaults to "data/activities.json".
	ActivitiesFile string

	// ReportDir is the directory reports are saved under. Defaults to "output".
	ReportDir string

	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Every value has a default; the only way Load fails is a non-numeric
// START_YEAR.
func Load() (Config, error) {
	cfg := Config{
		Timezone:       getEnv("TIMEZONE", "America/Los_Angeles"),
		ActivitiesFile: getEnv("ACTIVITIES_FILE", "data/activities.json"),
		ReportDir:      getEnv("REPORT_DIR", "output"),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	rawYear := getEnv("START_YEAR", "2023")
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: START_YEAR %q is not a number", rawYear)
	}
	cfg.StartYear = year

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
