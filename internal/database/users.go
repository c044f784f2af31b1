package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/chybatronik/goUserSearch/internal/models"
	"github.com/chybatronik/goUserSearch/internal/types"
)

// Performance constants for query execution
const (
	// Default timeout for database operations
	DefaultOperationTimeout = 5 * time.Second
	// Performance warning threshold
	PerformanceWarningThreshold = 100 * time.Millisecond
	// Critical performance threshold
	PerformanceCriticalThreshold = 180 * time.Millisecond
)

// RowCap is the fixed maximum number of rows any query returns. It is not
// configurable per request.
const RowCap = 500

// userColumns is the projection shared by every users query: the five
// stored columns plus the derived age.
var userColumns = []string{
	"id",
	"registration_date",
	"nickname",
	"birth_date",
	"token",
	ageProjection,
}

// SearchUsers runs the filtered, sorted users query. Predicates are appended
// in declaration order with positional bound values, the ordering comes from
// the sort resolver, and the result is capped at RowCap rows. Store failures
// are wrapped and surfaced once; there is no retry and no partial result.
func SearchUsers(ctx context.Context, db *sql.DB, params types.SearchParams) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	start := time.Now()

	query := squirrel.Select(userColumns...).From("users")
	query = applyFilters(query, params)
	query = query.OrderBy(resolveOrder(params.SortBy, params.SortDir)).Limit(RowCap)

	sqlText, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	users := []models.User{}
	if err := sqlscan.Select(ctx, db, &users, sqlText, args...); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	logPerformanceMetrics("SearchUsers", time.Since(start))

	return users, nil
}

// ListRecentUsers is the restricted, parameterless variant of the same query
// shape: no filters, fixed id DESC ordering, same projection and row cap.
func ListRecentUsers(ctx context.Context, db *sql.DB) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	start := time.Now()

	sqlText, args, err := squirrel.Select(userColumns...).
		From("users").
		OrderBy("id DESC").
		Limit(RowCap).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent users query: %w", err)
	}

	users := []models.User{}
	if err := sqlscan.Select(ctx, db, &users, sqlText, args...); err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}

	logPerformanceMetrics("ListRecentUsers", time.Since(start))

	return users, nil
}

// logPerformanceMetrics logs query timing for observability
func logPerformanceMetrics(operation string, duration time.Duration) {
	logger := logging.NewStructuredLogger("info", "goUserSearch", "database")

	durationMs := duration.Milliseconds()

	switch {
	case duration > PerformanceCriticalThreshold:
		logger.Error("Database operation performance critical",
			"operation", operation,
			"duration_ms", durationMs,
			"threshold_ms", PerformanceCriticalThreshold.Milliseconds(),
			"performance_level", "critical",
			"component", "database",
		)
	case duration > PerformanceWarningThreshold:
		logger.Warn("Database operation performance warning",
			"operation", operation,
			"duration_ms", durationMs,
			"threshold_ms", PerformanceWarningThreshold.Milliseconds(),
			"performance_level", "warning",
			"component", "database",
		)
	default:
		logger.Info("Database operation performance metric",
			"operation", operation,
			"duration_ms", durationMs,
			"performance_level", "optimal",
			"component", "database",
		)
	}
}
