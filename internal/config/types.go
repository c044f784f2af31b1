// Package config provides configuration types and structures for the goUserSearch service.
package config

// Config represents the application configuration
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Logging     LoggingConfig
	HealthCheck HealthCheckConfig
	Application ApplicationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int    // Server port number
	Host         string // Server host address
	ReadTimeout  int    // Read timeout in seconds
	WriteTimeout int    // Write timeout in seconds
	IdleTimeout  int    // Idle timeout in seconds
	StaticDir    string // Directory served at / (the search UI)
}

// DatabaseConfig holds SQLite database configuration
type DatabaseConfig struct {
	Path          string // Path to the pre-existing users database file
	BusyTimeoutMs int    // SQLite busy timeout in milliseconds
	MaxOpenConns  int    // Maximum open connections
	MaxIdleConns  int    // Maximum idle connections
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // Log level (debug, info, warn, error)
	Format string // Log format (json, text)
}

// HealthCheckConfig holds health check configuration
type HealthCheckConfig struct {
	Enabled bool // Enable health check endpoint
}

// ApplicationConfig holds application-specific configuration
type ApplicationConfig struct {
	Environment       string // Environment (development, staging, production)
	ShutdownTimeout   int    // Shutdown timeout in seconds
	RateLimitRequests int    // Rate limit requests per minute
	RateLimitBurst    int    // Rate limit burst size
	MetricsEnabled    bool   // Enable the Prometheus /metrics endpoint
}
