// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultMaxBodyBytes caps request bodies at 10 MiB.
const DefaultMaxBodyBytes int64 = 10 << 20

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5000".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to restrict.
	CORSOrigins []string

	// MaxBodyBytes is the largest accepted request body. Defaults to 10 MiB.
	MaxBodyBytes int64

	// RateLimitRPS is the per-client request rate on the generate route.
	// Zero disables rate limiting, which is the default.
	RateLimitRPS float64

	// RateLimitBurst is the per-client burst size. Defaults to 5.
	RateLimitBurst int

	// PDFCompress toggles deflate compression of PDF content streams. Defaults to true.
	PDFCompress bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable whose value could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var invalid []string

	var err error
	maxBody := getEnv("MAX_BODY_BYTES", strconv.FormatInt(DefaultMaxBodyBytes, 10))
	if cfg.MaxBodyBytes, err = strconv.ParseInt(maxBody, 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64); err != nil || cfg.RateLimitRPS < 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "5")); err != nil || cfg.RateLimitBurst < 1 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}
	if cfg.PDFCompress, err = strconv.ParseBool(getEnv("PDF_COMPRESS", "true")); err != nil {
		invalid = append(invalid, "PDF_COMPRESS")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadDotenv loads KEY=VALUE pairs from the given files (".env" when none are
// given) into the process environment. Variables already set win.
// A missing file is not an error.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config.LoadDotenv: %w", err)
		}
	}
	return nil
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
