// Package database provides query construction and execution against the
// pre-existing SQLite users database.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chybatronik/goUserSearch/internal/config"
)

// NewConnection opens the SQLite database file named in the configuration.
// The users relation is assumed to pre-exist; this service never migrates
// or mutates it. case_sensitive_like is enabled so the token substring
// filter honors its case-sensitive contract.
func NewConnection(appConfig *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_case_sensitive_like=on",
		appConfig.Database.Path,
		appConfig.Database.BusyTimeoutMs)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database %s: %w", appConfig.Database.Path, err)
	}

	// SQLite serializes writers itself; a small pool is plenty for a
	// read-only workload.
	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)
	db.SetMaxIdleConns(appConfig.Database.MaxIdleConns)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database %s: %w", appConfig.Database.Path, err)
	}

	return db, nil
}

// ValidateConnection checks if the database connection is working
func ValidateConnection(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}
	return db.PingContext(ctx)
}
