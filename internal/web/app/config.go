package app

import (
	"os"
	"strconv"
	"time"
)

// Store driver names selectable via MIDAS_STORE_DRIVER.
const (
	DriverPostgrest   = "postgrest"
	DriverSQLite      = "sqlite"
	DriverUnavailable = "unavailable"
)

type Config struct {
	StoreDriver  string // Optional: store driver (postgrest, sqlite, unavailable); inferred from the other store vars when empty
	StoreURL     string // Required for postgrest: managed backend project URL
	StoreKey     string // Required for postgrest: anon/API key
	DatabaseFile string // Required for sqlite: path to the database file (default: ./midas.db)

	LowcodeURL     string // Optional: low-code table backend base URL
	LowcodeToken   string // Optional: low-code backend API token
	LowcodeProject string // Optional: low-code project identifier
	LowcodeTable   string // Optional: low-code table identifier
	LowcodeView    string // Optional: low-code view identifier (falls back to raw table rows)

	CookieSecure bool // Mark session cookies HTTPS-only (default: true outside dev)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		StoreDriver:  os.Getenv("MIDAS_STORE_DRIVER"),
		StoreURL:     os.Getenv("MIDAS_STORE_URL"),
		StoreKey:     os.Getenv("MIDAS_STORE_KEY"),
		DatabaseFile: getEnvOrDefault("MIDAS_DATABASE_FILE", "midas.db"),

		LowcodeURL:     os.Getenv("MIDAS_LOWCODE_URL"),
		LowcodeToken:   os.Getenv("MIDAS_LOWCODE_TOKEN"),
		LowcodeProject: os.Getenv("MIDAS_LOWCODE_PROJECT"),
		LowcodeTable:   os.Getenv("MIDAS_LOWCODE_TABLE"),
		LowcodeView:    os.Getenv("MIDAS_LOWCODE_VIEW"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.StoreDriver == "" {
		cfg.StoreDriver = inferStoreDriver(cfg)
	}

	cfg.CookieSecure = getEnvBoolOrDefault("MIDAS_COOKIE_SECURE", cfg.Env != "dev")

	return cfg
}

// inferStoreDriver selects the store driver from which backend vars are
// present: the managed backend when its URL and key are configured, the
// local sqlite file when MIDAS_DATABASE_FILE is set explicitly, and the
// unavailable driver otherwise. The marketing pages work either way; only
// the portal needs a real store.
func inferStoreDriver(cfg Config) string {
	if cfg.StoreURL != "" && cfg.StoreKey != "" {
		return DriverPostgrest
	}
	if os.Getenv("MIDAS_DATABASE_FILE") != "" {
		return DriverSQLite
	}
	return DriverUnavailable
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
