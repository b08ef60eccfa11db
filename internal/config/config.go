// Package config loads the service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/genvec"
)

const environmentProduction = "production"

// Config holds the server configuration.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string     // Sentry DSN for error tracking
	LogLevel  slog.Level // LOG_LEVEL: debug, info, warn or error

	// Generation
	PaletteFile string // YAML or JSON palette catalog; empty uses the built-in one
	MaxViewport int    // upper bound on requested viewport sides
	CacheSize   int    // rendered exports kept per session
}

// Load reads the configuration from the environment. Malformed numbers fall
// back to their defaults.
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
		PaletteFile: getEnv("GENVEC_PALETTE_FILE", ""),
		MaxViewport: getEnvInt("GENVEC_MAX_VIEWPORT", genvec.MaxViewport, genvec.MinViewport, genvec.MaxViewport),
		CacheSize:   getEnvInt("GENVEC_CACHE_SIZE", 16, 0, 1024),
	}
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue, lo, hi int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return min(hi, max(lo, v))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
