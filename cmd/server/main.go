// Package main provides the entry point for the goUserSearch service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chybatronik/goUserSearch/internal/config"
	"github.com/chybatronik/goUserSearch/internal/database"
	"github.com/chybatronik/goUserSearch/internal/handlers"
	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/chybatronik/goUserSearch/internal/middleware"
	"github.com/chybatronik/goUserSearch/internal/models"
	"github.com/chybatronik/goUserSearch/internal/types"
)

var (
	// Build information (set during build)
	Version   = "dev"
	BuildTime = ""
)

// StoreAdapter implements the handlers.UserStore interface against the
// shared database handle. The handle is injected once at startup and closed
// on shutdown; no other code holds ambient store state.
type StoreAdapter struct {
	db *sql.DB
}

// SearchUsers implements the UserStore interface
func (sa *StoreAdapter) SearchUsers(ctx context.Context, params types.SearchParams) ([]models.User, error) {
	users, err := database.SearchUsers(ctx, sa.db, params)
	if err != nil {
		return nil, database.MapDatabaseErrorSecure(err)
	}
	return users, nil
}

// ListRecentUsers implements the UserStore interface
func (sa *StoreAdapter) ListRecentUsers(ctx context.Context) ([]models.User, error) {
	users, err := database.ListRecentUsers(ctx, sa.db)
	if err != nil {
		return nil, database.MapDatabaseErrorSecure(err)
	}
	return users, nil
}

func main() {
	// Initialize configuration first
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := setupStructuredLogging(appConfig)
	logStartupEvents(logger, appConfig)

	logger.Startup("Opening users database...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewConnection(appConfig)
	if err != nil {
		logger.Error("Failed to open users database", logging.FieldError, err)
		log.Fatalf("FATAL: Failed to open users database: %v", err)
	}
	defer db.Close()

	if err := database.ValidateConnection(ctx, db); err != nil {
		logger.Error("Database connection validation failed", logging.FieldError, err)
		log.Fatalf("FATAL: Database connection validation failed: %v", err)
	}

	logger.Database("Users database opened successfully", "path", appConfig.Database.Path)

	// Setup HTTP server with graceful shutdown
	server := setupHTTPServer(appConfig, db, logger)

	go func() {
		logger.Startup("HTTP server starting",
			"host", appConfig.Server.Host,
			"port", appConfig.Server.Port,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed to start", logging.FieldError, err)
			log.Fatalf("FATAL: HTTP server failed to start: %v", err)
		}
	}()

	logger.Startup("goUserSearch service started successfully")

	gracefulShutdown(server, db, appConfig.Application.ShutdownTimeout, logger)
}

// setupHTTPServer configures the HTTP server, routes and middleware chain
func setupHTTPServer(appConfig *config.Config, db *sql.DB, logger *logging.Logger) *http.Server {
	healthHandler := handlers.NewHealthHandler("goUserSearch", Version, logger)
	if appConfig.HealthCheck.Enabled {
		healthHandler.AddChecker(database.NewHealthChecker(db))
	}

	store := &StoreAdapter{db: db}
	userHandler := handlers.NewUserHandler(logger, store)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler.ServeHTTP)
	mux.HandleFunc("/api/users", userHandler.ListUsers)
	mux.HandleFunc("/api/users/search", userHandler.SearchUsers)

	if appConfig.Application.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Static search UI at the root
	mux.Handle("/", http.FileServer(http.Dir(appConfig.Server.StaticDir)))

	// Middleware chain, outermost first: rate limiting, request ID,
	// request logging, panic recovery, then optionally metrics.
	handler := http.Handler(mux)
	if appConfig.Application.MetricsEnabled {
		metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
		handler = metrics.Handler(handler)
	}
	handler = middleware.NewErrorHandler(handler)
	handler = middleware.NewLoggingMiddleware(logger, handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.SecurityRateLimit(
		float64(appConfig.Application.RateLimitRequests)/60.0,
		appConfig.Application.RateLimitBurst,
	)(handler)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", appConfig.Server.Host, appConfig.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(appConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(appConfig.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(appConfig.Server.IdleTimeout) * time.Second,
	}
}

// gracefulShutdown handles graceful shutdown of the service
func gracefulShutdown(server *http.Server, db *sql.DB, shutdownTimeout int, logger *logging.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Startup("Received signal, initiating graceful shutdown", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	logger.Startup("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", logging.FieldError, err)
	} else {
		logger.Startup("HTTP server shutdown completed")
	}

	logger.Startup("Closing database connection...")
	if err := db.Close(); err != nil {
		logger.Error("Database close failed", logging.FieldError, err)
	}

	logger.Startup("goUserSearch service shutdown completed")
}

// setupStructuredLogging initializes the structured logger based on configuration
func setupStructuredLogging(cfg *config.Config) *logging.Logger {
	logger := logging.NewStructuredLogger(
		cfg.Logging.Level,
		"goUserSearch",
		Version,
	)

	return logger.WithServiceContext()
}

// logStartupEvents logs comprehensive startup information
func logStartupEvents(logger *logging.Logger, cfg *config.Config) {
	logger.Startup("goUserSearch service starting up",
		"version", Version,
		"service", "goUserSearch",
	)

	logger.Startup("configuration loaded successfully",
		"environment", cfg.Application.Environment,
		"log_level", cfg.Logging.Level,
		"server_port", cfg.Server.Port,
		"server_host", cfg.Server.Host,
		"db_path", cfg.Database.Path,
		"static_dir", cfg.Server.StaticDir,
		"health_check_enabled", cfg.HealthCheck.Enabled,
		"metrics_enabled", cfg.Application.MetricsEnabled,
	)
}
