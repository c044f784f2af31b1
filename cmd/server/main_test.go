package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chybatronik/goUserSearch/internal/config"
	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/chybatronik/goUserSearch/internal/types"
)

func testServerConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_PATH", ":memory:")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func openServerTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_case_sensitive_like=on")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		registration_date TEXT,
		nickname TEXT,
		birth_date TEXT,
		token TEXT
	)`)
	if err != nil {
		t.Fatalf("failed to create users table: %v", err)
	}

	_, err = db.Exec(`INSERT INTO users (id, registration_date, nickname, birth_date, token)
		VALUES (1, '2023-05-01', 'neo', '1990-06-15', 'tok-abc')`)
	if err != nil {
		t.Fatalf("failed to seed users table: %v", err)
	}

	return db
}

func TestStoreAdapterRoundTrip(t *testing.T) {
	db := openServerTestDB(t)
	store := &StoreAdapter{db: db}

	listed, err := store.ListRecentUsers(context.Background())
	if err != nil {
		t.Fatalf("ListRecentUsers failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Nickname != "neo" {
		t.Fatalf("unexpected listing result: %+v", listed)
	}

	token := "abc"
	searched, err := store.SearchUsers(context.Background(), types.SearchParams{
		Token:   &token,
		SortDir: types.SortDescending,
	})
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(searched) != 1 || searched[0].ID != listed[0].ID {
		t.Fatalf("search result should match listed row, got %+v", searched)
	}
}

func TestSetupHTTPServerRoutes(t *testing.T) {
	cfg := testServerConfig(t)
	db := openServerTestDB(t)
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")

	server := setupHTTPServer(cfg, db, logger)

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/users, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/users/search?sortBy=nickname&sortDir=asc", nil)
	w = httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/users/search, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/health?ping=true", nil)
	w = httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}
}
