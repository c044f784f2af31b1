// Package handlers provides HTTP request handlers for the goUserSearch service.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/chybatronik/goUserSearch/internal/middleware"
	"github.com/chybatronik/goUserSearch/internal/models"
	"github.com/chybatronik/goUserSearch/internal/types"
	"github.com/chybatronik/goUserSearch/internal/validation"
	pkgerrors "github.com/chybatronik/goUserSearch/pkg/errors"
)

// UserStore defines the interface for user query operations
type UserStore interface {
	SearchUsers(ctx context.Context, params types.SearchParams) ([]models.User, error)
	ListRecentUsers(ctx context.Context) ([]models.User, error)
}

// UserHandler handles HTTP requests for the two read-only user endpoints
type UserHandler struct {
	logger *logging.Logger
	store  UserStore
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(logger *logging.Logger, store UserStore) *UserHandler {
	return &UserHandler{
		logger: logger,
		store:  store,
	}
}

// ErrorResponse is the unified error payload: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListUsers handles GET /api/users: the most recent users by id descending,
// no filters, capped at the fixed row limit.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	reqID := h.extractRequestID(r)
	logger := h.logger.WithRequestID(reqID)

	if r.Method != http.MethodGet {
		logger.Warn("Invalid HTTP method for user listing",
			"method", r.Method,
			"expected_method", "GET",
		)
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	users, err := h.store.ListRecentUsers(r.Context())
	if err != nil {
		h.writeStoreFailure(w, logger, err)
		return
	}

	h.writeUsersResponse(w, logger, users)

	logger.Info("User listing request completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"status_code", http.StatusOK,
		"user_count", len(users),
	)
}

// SearchUsers handles GET /api/users/search. The six optional query fields
// parse permissively into typed parameters; nothing here ever produces a
// 400. Absent fields mean no constraint, degenerate values degrade inside
// the query itself.
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	reqID := h.extractRequestID(r)
	logger := h.logger.WithRequestID(reqID)

	if r.Method != http.MethodGet {
		logger.Warn("Invalid HTTP method for user search",
			"method", r.Method,
			"expected_method", "GET",
		)
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	params := validation.ParseSearchParams(r.URL.Query())

	logger.Info("Searching users",
		"query", r.URL.RawQuery,
		"sort_by", string(params.SortBy),
		"sort_dir", string(params.SortDir),
	)

	users, err := h.store.SearchUsers(r.Context(), params)
	if err != nil {
		h.writeStoreFailure(w, logger, err)
		return
	}

	h.writeUsersResponse(w, logger, users)

	logger.Info("User search request completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"status_code", http.StatusOK,
		"user_count", len(users),
	)
}

// writeUsersResponse writes the result rows as a bare JSON array
func (h *UserHandler) writeUsersResponse(w http.ResponseWriter, logger *logging.Logger, users []models.User) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if users == nil {
		users = []models.User{}
	}

	if err := json.NewEncoder(w).Encode(users); err != nil {
		logger.Error("Failed to encode users response",
			logging.FieldError, err,
			"user_count", len(users),
		)
	}
}

// writeStoreFailure maps a persistence failure to the opaque client error.
// The store error is logged with full detail; the response carries only the
// generic message.
func (h *UserHandler) writeStoreFailure(w http.ResponseWriter, logger *logging.Logger, err error) {
	logger.Error("Database query failed", logging.FieldError, err)

	if userErr, ok := pkgerrors.GetUserError(err); ok {
		h.writeErrorResponse(w, userErr.GetHTTPStatus(), userErr.Message)
		return
	}
	h.writeErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// writeErrorResponse writes a unified error response
func (h *UserHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		h.logger.Error("Failed to encode error response",
			logging.FieldError, err,
			"status_code", statusCode,
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// extractRequestID extracts the request ID from the request context
func (h *UserHandler) extractRequestID(r *http.Request) string {
	if reqID := middleware.GetRequestID(r.Context()); reqID != "" {
		return reqID
	}
	return "unknown"
}
