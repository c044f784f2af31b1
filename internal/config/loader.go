// Package config provides configuration loading and environment management
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	msg := "configuration validation errors:\n"
	for _, err := range ve {
		msg += fmt.Sprintf("  - %s\n", err.Error())
	}
	return msg
}

// OptionalEnvironmentVariables defines environment variables with defaults.
// The SQLite store needs no credentials, so nothing is strictly required:
// with an empty environment the service serves ./users.db on :3000 like the
// original deployment.
var OptionalEnvironmentVariables = map[string]string{
	"DB_PATH":              "./users.db",
	"DB_BUSY_TIMEOUT_MS":   "5000",
	"DB_MAX_OPEN_CONNS":    "4",
	"DB_MAX_IDLE_CONNS":    "2",
	"APP_HOST":             "0.0.0.0",
	"APP_PORT":             "3000",
	"STATIC_DIR":           "./public",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"ENVIRONMENT":          "development",
	"SERVER_READ_TIMEOUT":  "30",
	"SERVER_WRITE_TIMEOUT": "30",
	"SERVER_IDLE_TIMEOUT":  "120",
	"SHUTDOWN_TIMEOUT":     "30",
	"RATE_LIMIT_REQUESTS":  "100",
	"RATE_LIMIT_BURST":     "20",
	"METRICS_ENABLED":      "false",
	"HEALTH_CHECK_ENABLED": "true",
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	// 1. Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// 2. Load configuration with defaults
	config := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("APP_PORT", 3000),
			Host:         getEnv("APP_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 120),
			StaticDir:    getEnv("STATIC_DIR", "./public"),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "./users.db"),
			BusyTimeoutMs: getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 4),
			MaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 2),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		HealthCheck: HealthCheckConfig{
			Enabled: getEnvBool("HEALTH_CHECK_ENABLED", true),
		},
		Application: ApplicationConfig{
			Environment:       getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout:   getEnvInt("SHUTDOWN_TIMEOUT", 30),
			RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
			RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
			MetricsEnabled:    getEnvBool("METRICS_ENABLED", false),
		},
	}

	// 3. Post-load configuration validation
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as integer with default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets environment variable as boolean with default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
