package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"log"

	"github.com/mattn/go-sqlite3"

	pkgerrors "github.com/chybatronik/goUserSearch/pkg/errors"
)

// MapDatabaseErrorSecure maps store errors to the single opaque
// client-facing category. The detailed cause is logged internally; clients
// only ever see "Database error" with a 500 (or 503 for connectivity), no
// matter what actually failed underneath.
func MapDatabaseErrorSecure(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		log.Printf("SQLite error - Code: %d, Extended: %d, Message: %s",
			sqliteErr.Code, sqliteErr.ExtendedCode, sqliteErr.Error())

		if isConnectionError(err) {
			return pkgerrors.NewStoreUnavailableError()
		}
		return pkgerrors.NewDatabaseError()
	}

	if isConnectionError(err) {
		log.Printf("Database connection error: %v", err)
		return pkgerrors.NewStoreUnavailableError()
	}

	log.Printf("Database error: %v", err)
	return pkgerrors.NewDatabaseError()
}

// isConnectionError checks if the error is connectivity-related
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr:
			return true
		}
	}

	return false
}
