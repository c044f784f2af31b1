// Package middleware provides HTTP middleware for the goUserSearch service.
package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the unified error payload: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler middleware recovers panics and formats bare error statuses
// as consistent JSON responses. A failing handler must never take the
// process down; the request gets a response and the server keeps serving.
type ErrorHandler struct {
	next http.Handler
}

// NewErrorHandler creates a new error handler middleware
func NewErrorHandler(next http.Handler) *ErrorHandler {
	return &ErrorHandler{
		next: next,
	}
}

// ServeHTTP implements the http.Handler interface with panic recovery
func (eh *ErrorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wrapped := NewResponseWriter(w)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Panic recovered in error handler: %v", rec)
			eh.handleError(w, http.StatusInternalServerError, "Internal server error")
		}
	}()

	eh.next.ServeHTTP(wrapped, r)

	// Format only bare error statuses; handlers that already wrote a body
	// keep their own payload.
	if wrapped.StatusCode() >= 400 && !wrapped.HasBody() {
		eh.handleError(w, wrapped.StatusCode(), "Request failed")
	}
}

// handleError writes a JSON error response if headers were not sent yet
func (eh *ErrorHandler) handleError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
