package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_Defaults(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())

	if rw.StatusCode() != http.StatusOK {
		t.Errorf("expected default status %d, got %d", http.StatusOK, rw.StatusCode())
	}
	if rw.HasBody() {
		t.Error("expected no body before any write")
	}
	if rw.BytesWritten() != 0 {
		t.Errorf("expected 0 bytes written, got %d", rw.BytesWritten())
	}
}

func TestResponseWriter_CapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	rw.WriteHeader(http.StatusInternalServerError)

	if rw.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected captured status %d, got %d", http.StatusInternalServerError, rw.StatusCode())
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected underlying status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	payload := []byte(`{"error":"Database error"}`)
	n, err := rw.Write(payload)
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if n != len(payload) {
		t.Errorf("expected %d bytes reported, got %d", len(payload), n)
	}
	if rw.BytesWritten() != len(payload) {
		t.Errorf("expected %d bytes counted, got %d", len(payload), rw.BytesWritten())
	}
	if !rw.HasBody() {
		t.Error("expected HasBody after write")
	}
	if rec.Body.String() != string(payload) {
		t.Errorf("expected payload passed through, got '%s'", rec.Body.String())
	}
}

func TestResponseWriter_HeaderPassthrough(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	rw.Header().Set("Content-Type", "application/json")

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected header on underlying writer, got '%s'", got)
	}
}
