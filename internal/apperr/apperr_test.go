package apperr

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"football-schedule-service/internal/providers"
)

func TestFromUpstreamStatusCodes(t *testing.T) {
	cases := []struct {
		name         string
		statusCode   int
		expectedKind Kind
		expectedHTTP int
	}{
		{"unauthorized maps to auth failed", http.StatusUnauthorized, KindUpstreamAuthFailed, http.StatusForbidden},
		{"forbidden maps to auth failed", http.StatusForbidden, KindUpstreamAuthFailed, http.StatusForbidden},
		{"not found passes through", http.StatusNotFound, KindUpstreamNotFound, http.StatusNotFound},
		{"bad request passes through", http.StatusBadRequest, KindUpstreamBadRequest, http.StatusBadRequest},
		{"unprocessable maps to bad request", http.StatusUnprocessableEntity, KindUpstreamBadRequest, http.StatusBadRequest},
		{"request timeout maps to timeout", http.StatusRequestTimeout, KindUpstreamTimeout, http.StatusRequestTimeout},
		{"gateway timeout maps to timeout", http.StatusGatewayTimeout, KindUpstreamTimeout, http.StatusRequestTimeout},
		{"bad gateway maps to unreachable", http.StatusBadGateway, KindUpstreamUnreachable, http.StatusServiceUnavailable},
		{"service unavailable maps to unreachable", http.StatusServiceUnavailable, KindUpstreamUnreachable, http.StatusServiceUnavailable},
		{"server error maps to unexpected", http.StatusInternalServerError, KindUpstreamUnexpected, http.StatusInternalServerError},
		{"teapot maps to unexpected", http.StatusTeapot, KindUpstreamUnexpected, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &providers.StatusError{Provider: "test", StatusCode: tc.statusCode}
			cErr := FromUpstream(err)
			if cErr.Kind != tc.expectedKind {
				t.Fatalf("expected kind %s, got %s", tc.expectedKind, cErr.Kind)
			}
			if cErr.HTTPStatus != tc.expectedHTTP {
				t.Fatalf("expected status %d, got %d", tc.expectedHTTP, cErr.HTTPStatus)
			}
		})
	}
}

func TestFromUpstreamBlocked(t *testing.T) {
	cErr := FromUpstream(&providers.BlockedError{Provider: "gemini", Reason: "SAFETY"})
	if cErr.Kind != KindUpstreamBlocked {
		t.Fatalf("expected blocked kind, got %s", cErr.Kind)
	}
	if cErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", cErr.HTTPStatus)
	}
}

func TestFromUpstreamProviderUnavailable(t *testing.T) {
	cErr := FromUpstream(providers.ErrProviderUnavailable)
	if cErr.Kind != KindProviderUnavailable {
		t.Fatalf("expected provider unavailable kind, got %s", cErr.Kind)
	}
	if cErr.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", cErr.HTTPStatus)
	}
}

func TestFromUpstreamDeadline(t *testing.T) {
	cErr := FromUpstream(context.DeadlineExceeded)
	if cErr.Kind != KindUpstreamTimeout {
		t.Fatalf("expected timeout kind, got %s", cErr.Kind)
	}
}

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "dial failed" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

func TestFromUpstreamNetErrors(t *testing.T) {
	if cErr := FromUpstream(fakeNetError{timeout: true}); cErr.Kind != KindUpstreamTimeout {
		t.Fatalf("expected timeout for net timeout, got %s", cErr.Kind)
	}
	if cErr := FromUpstream(fakeNetError{}); cErr.Kind != KindUpstreamUnreachable {
		t.Fatalf("expected unreachable for net error, got %s", cErr.Kind)
	}
}

func TestFromUpstreamUnknown(t *testing.T) {
	cErr := FromUpstream(errors.New("boom"))
	if cErr.Kind != KindUpstreamUnexpected {
		t.Fatalf("expected unexpected kind, got %s", cErr.Kind)
	}
	if cErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", cErr.HTTPStatus)
	}
}

func TestFromExtractsCanonical(t *testing.T) {
	original := New(KindMissingCredential, "no key")
	if got := From(original); got != original {
		t.Fatal("expected the original canonical error back")
	}

	wrapped := From(&providers.StatusError{Provider: "x", StatusCode: http.StatusForbidden})
	if wrapped.Kind != KindUpstreamAuthFailed {
		t.Fatalf("expected auth failed, got %s", wrapped.Kind)
	}

	if From(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestStatusForUnknownKind(t *testing.T) {
	if got := StatusFor(Kind("nonsense")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", got)
	}
}

func TestErrorString(t *testing.T) {
	err := Newf(KindMissingInput, "prompt must not be empty")
	expected := "missing_input: prompt must not be empty"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}
