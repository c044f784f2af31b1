// Package errors provides user-facing error definitions for goUserSearch
// following the unified error response format: {"error": "message"}
package errors

import (
	"fmt"
	"net/http"
)

// Error codes used for internal classification. Clients never see these;
// the response payload carries only the message.
const (
	// Database errors (500 Internal Server Error)
	ErrCodeDatabaseError = "USER_DATABASE_ERROR"
	// Connectivity errors, same client-facing contract as any other
	// persistence failure
	ErrCodeConnectionFailed = "USER_CONNECTION_FAILED"
)

// UserError represents a user-facing error with HTTP status mapping
type UserError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

// Error implements the error interface
func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// GetHTTPStatus returns the HTTP status code for the error
func (e *UserError) GetHTTPStatus() int {
	return e.HTTPStatus
}

// NewDatabaseError creates the single opaque persistence-failure error.
// Every store failure maps here so no internal detail leaks to clients.
func NewDatabaseError() *UserError {
	return &UserError{
		Code:       ErrCodeDatabaseError,
		Message:    "Database error",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewStoreUnavailableError creates the connectivity-failure error. The
// client contract is identical to NewDatabaseError; the distinct code only
// helps internal log correlation.
func NewStoreUnavailableError() *UserError {
	return &UserError{
		Code:       ErrCodeConnectionFailed,
		Message:    "Database error",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetUserError extracts a UserError from an error
func GetUserError(err error) (*UserError, bool) {
	userErr, ok := err.(*UserError)
	return userErr, ok
}
