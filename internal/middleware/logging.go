package middleware

import (
	"net/http"
	"time"

	"github.com/chybatronik/goUserSearch/internal/logging"
)

// LoggingMiddleware emits one structured completion record per request:
// request ID, method, path, status and latency. Response bytes are counted
// by the wrapped writer so slow or oversized responses show up in the logs.
type LoggingMiddleware struct {
	next   http.Handler
	logger *logging.Logger
}

// NewLoggingMiddleware creates a new structured logging middleware
func NewLoggingMiddleware(logger *logging.Logger, next http.Handler) *LoggingMiddleware {
	return &LoggingMiddleware{
		next:   next,
		logger: logger,
	}
}

func (lm *LoggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := GetRequestID(r.Context())

	wrapped := NewResponseWriter(w)
	lm.next.ServeHTTP(wrapped, r)

	lm.logger.Request(
		reqID,
		r.Method,
		r.URL.Path,
		wrapped.StatusCode(),
		time.Since(start).Milliseconds(),
	)
}
