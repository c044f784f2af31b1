package middleware

import "net/http"

// ResponseWriter wraps http.ResponseWriter to record the status code and
// body size after the handler runs. The logging and error middleware read
// these to log completion and to detect bare error statuses.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *ResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *ResponseWriter) Write(data []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(data)
	rw.written += n
	return n, err
}

// StatusCode returns the recorded status, defaulting to 200 when the
// handler never called WriteHeader.
func (rw *ResponseWriter) StatusCode() int {
	return rw.statusCode
}

func (rw *ResponseWriter) BytesWritten() int {
	return rw.written
}

func (rw *ResponseWriter) HasBody() bool {
	return rw.written > 0
}
