// Package logging provides standard field definitions for structured logging
package logging

// Standard field names shared by log producers so downstream tooling sees a
// consistent schema.
const (
	FieldRequestID    = "req_id"
	FieldHTTPMethod   = "method"
	FieldHTTPPath     = "path"
	FieldHTTPStatus   = "status"
	FieldLatencyMs    = "latency_ms"
	FieldService      = "service"
	FieldVersion      = "version"
	FieldError        = "error"
	FieldResponseTime = "response_time_ms"
)
