package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chybatronik/goUserSearch/internal/handlers"
)

// HealthChecker implements database health checking with timing
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a new database health checker
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements the handlers.HealthChecker interface
func (h *HealthChecker) Name() string {
	return "database"
}

// CheckHealth checks database connectivity with timing
func (h *HealthChecker) CheckHealth(ctx context.Context) handlers.HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.PingContext(ctx)
	responseTime := time.Since(start).Milliseconds()

	healthCheck := handlers.HealthCheck{
		Status:         "healthy",
		ResponseTimeMs: responseTime,
	}

	if err != nil {
		healthCheck.Status = "unhealthy"
		healthCheck.Error = fmt.Sprintf("database connection failed: %v", err)
	}

	return healthCheck
}

// Ping runs a simple connectivity test with a timeout
func (h *HealthChecker) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.db.PingContext(ctx)
}
