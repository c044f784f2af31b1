package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate validates the configuration and returns any errors
func Validate(config *Config) error {
	var validationErrors []string

	if err := validateDatabaseConfig(&config.Database); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if err := validateServerConfig(&config.Server); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if err := validateApplicationConfig(&config.Application); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(validationErrors, "; "))
	}

	return nil
}

// validateDatabaseConfig validates database configuration
func validateDatabaseConfig(db *DatabaseConfig) error {
	if db.Path == "" {
		return errors.New("database path is required")
	}

	if db.BusyTimeoutMs < 0 {
		return errors.New("database busy timeout must not be negative")
	}

	if db.MaxOpenConns <= 0 {
		return errors.New("database max open connections must be positive")
	}

	if db.MaxIdleConns < 0 || db.MaxIdleConns > db.MaxOpenConns {
		return errors.New("database max idle connections must be between 0 and max open connections")
	}

	return nil
}

// validateServerConfig validates server configuration
func validateServerConfig(server *ServerConfig) error {
	if server.Port <= 0 || server.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}

	if server.ReadTimeout <= 0 {
		return errors.New("server read timeout must be positive")
	}

	if server.WriteTimeout <= 0 {
		return errors.New("server write timeout must be positive")
	}

	if server.IdleTimeout <= 0 {
		return errors.New("server idle timeout must be positive")
	}

	if server.StaticDir == "" {
		return errors.New("static directory is required")
	}

	return nil
}

// validateLoggingConfig validates logging configuration
func validateLoggingConfig(logging *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s, must be one of: %s", logging.Level, strings.Join(validLevels, ", "))
	}

	validFormats := []string{"json", "text"}
	validFormat := false
	for _, format := range validFormats {
		if logging.Format == format {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid log format: %s, must be one of: %s", logging.Format, strings.Join(validFormats, ", "))
	}

	return nil
}

// validateApplicationConfig validates application configuration
func validateApplicationConfig(app *ApplicationConfig) error {
	validEnvironments := []string{"development", "staging", "production"}
	validEnv := false
	for _, env := range validEnvironments {
		if app.Environment == env {
			validEnv = true
			break
		}
	}
	if !validEnv {
		return fmt.Errorf("invalid environment: %s, must be one of: %s", app.Environment, strings.Join(validEnvironments, ", "))
	}

	if app.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	if app.RateLimitRequests <= 0 {
		return errors.New("rate limit requests must be positive")
	}

	if app.RateLimitBurst <= 0 {
		return errors.New("rate limit burst must be positive")
	}

	return nil
}
