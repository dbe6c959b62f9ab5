package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"football-schedule-service/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	var seenID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
	})
	handler := LoggingMiddleware(nil, metrics.NewRecorder(), inner)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seenID == "" {
		t.Fatal("expected a generated request ID on the context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("expected response header %q to match context ID %q", got, seenID)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	handler := LoggingMiddleware(nil, nil, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming ID to be kept, got %q", got)
	}
}

func TestLoggingMiddlewareReplacesMalformedID(t *testing.T) {
	handler := LoggingMiddleware(nil, nil, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "bad id with spaces!" || got == "" {
		t.Fatalf("expected malformed ID to be replaced, got %q", got)
	}
}

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	handler := CORSMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/get-matches", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected inner handler to run, got %d", rec.Code)
	}
}

func TestCORSMiddlewareShortCircuitsPreflight(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	handler := CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if called {
		t.Fatal("preflight must not reach the inner handler")
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("expected allowed methods header on preflight")
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"/matches", "/api/get-matches"},
		{"/api/get-matches", "/api/get-matches"},
		{"/api/analyze", "/api/analyze"},
		{"/health", "/health"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.expected {
			t.Fatalf("path %q: expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_ID-123"); got != "valid_ID-123" {
		t.Fatalf("expected valid ID to pass, got %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatal("expected generated ID for empty input")
	}
	longID := make([]byte, 65)
	for i := range longID {
		longID[i] = 'a'
	}
	if got := sanitizeRequestID(string(longID)); got == string(longID) {
		t.Fatal("expected over-long ID to be replaced")
	}
}
