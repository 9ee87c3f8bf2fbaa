package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggerPreservesStatusAndBody(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/posts", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rr.Code)
	}
	if rr.Body.String() != "created" {
		t.Errorf("body: got %q", rr.Body.String())
	}
}

func TestResponseWriterDefaultsTo200(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	rw.Write([]byte("ok"))

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode: got %d, want 200", rw.statusCode)
	}
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.Write([]byte("not found"))

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("statusCode: got %d, want 404", rw.statusCode)
	}
}
