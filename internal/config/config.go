package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration of the HTTP service.  Each field
// corresponds to an environment variable; every variable has a default so the
// service starts with no configuration at all (the counter backend may still
// be unreachable, which the handlers tolerate).
type Config struct {
	Env      string // application environment reported by /ping (e.g. "development", "production")
	Port     string // HTTP port to listen on
	LogLevel string // minimum log level ("debug", "info", "warn", "error")
}

// Load reads the application configuration from environment variables.
// APP_ENV is the canonical variable; FLASK_ENV is honoured as a fallback
// because existing deployments of the previous incarnation of this service
// still set it.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", getenv("FLASK_ENV", "development")),
		Port:     getenv("APP_PORT", "5000"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

// getenv retrieves an environment variable, returning def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like getenv for integers; non-numeric values fall back to def.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

// envDur is like getenv for durations; unparsable values fall back to def.
func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

// envBool interprets the usual truthy/falsy spellings; anything else is def.
func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}
