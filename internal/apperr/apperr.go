// Package apperr defines the canonical, provider-independent error taxonomy
// exposed to callers. It is the single point of truth for HTTP status codes:
// adapters report typed upstream failures and this package decides how they
// surface.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"football-schedule-service/internal/providers"
)

// Kind enumerates the closed set of canonical failure kinds.
type Kind string

const (
	KindMissingInput        Kind = "missing_input"
	KindMissingCredential   Kind = "missing_credential"
	KindUpstreamAuthFailed  Kind = "upstream_auth_failed"
	KindUpstreamNotFound    Kind = "upstream_not_found"
	KindUpstreamBadRequest  Kind = "upstream_bad_request"
	KindUpstreamTimeout     Kind = "upstream_timeout"
	KindUpstreamUnreachable Kind = "upstream_unreachable"
	KindUpstreamBlocked     Kind = "upstream_empty_or_blocked"
	KindProviderUnavailable Kind = "provider_unavailable"
	KindUpstreamUnexpected  Kind = "upstream_unexpected"
)

var statusByKind = map[Kind]int{
	KindMissingInput:        http.StatusBadRequest,
	KindMissingCredential:   http.StatusBadRequest,
	KindUpstreamAuthFailed:  http.StatusForbidden,
	KindUpstreamNotFound:    http.StatusNotFound,
	KindUpstreamBadRequest:  http.StatusBadRequest,
	KindUpstreamTimeout:     http.StatusRequestTimeout,
	KindUpstreamUnreachable: http.StatusServiceUnavailable,
	KindUpstreamBlocked:     http.StatusBadRequest,
	KindProviderUnavailable: http.StatusServiceUnavailable,
	KindUpstreamUnexpected:  http.StatusInternalServerError,
}

// Error is a canonical error owned by the call chain that produced it.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs a canonical error with the status the taxonomy assigns to kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, HTTPStatus: StatusFor(kind)}
}

// Newf constructs a canonical error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// StatusFor returns the HTTP status the transport shell should surface for kind.
func StatusFor(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// From extracts a canonical error from err, wrapping anything unrecognized
// as UpstreamUnexpected so the transport shell always has a status to emit.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var cErr *Error
	if errors.As(err, &cErr) {
		return cErr
	}
	return FromUpstream(err)
}

// FromUpstream translates a provider-native failure into the canonical
// taxonomy. The mapping is table-driven per signal family:
//
//	auth rejection (401/403)      -> UpstreamAuthFailed   403
//	resource/model not found      -> UpstreamNotFound     404
//	malformed request (400/422)   -> UpstreamBadRequest   400
//	deadline exceeded / timeout   -> UpstreamTimeout      408
//	connection failure            -> UpstreamUnreachable  503
//	blocked or empty completion   -> UpstreamEmptyOrBlocked 400
//	anything else                 -> UpstreamUnexpected   500
func FromUpstream(err error) *Error {
	if err == nil {
		return nil
	}

	if bErr, ok := providers.AsBlockedError(err); ok {
		reason := bErr.Reason
		if reason == "" {
			reason = "unknown"
		}
		return Newf(KindUpstreamBlocked, "upstream returned no usable completion (reason: %s)", reason)
	}

	if sErr, ok := providers.AsStatusError(err); ok {
		return fromStatusCode(sErr)
	}

	if errors.Is(err, providers.ErrProviderUnavailable) {
		return New(KindProviderUnavailable, "provider not configured")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(KindUpstreamTimeout, "upstream call timed out")
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return New(KindUpstreamTimeout, "upstream call timed out")
		}
		return Newf(KindUpstreamUnreachable, "upstream unreachable: %v", err)
	}

	return Newf(KindUpstreamUnexpected, "unexpected upstream failure: %v", err)
}

func fromStatusCode(sErr *providers.StatusError) *Error {
	switch sErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return Newf(KindUpstreamAuthFailed, "%s rejected the credential", sErr.Provider)
	case http.StatusNotFound:
		return Newf(KindUpstreamNotFound, "%s resource not found", sErr.Provider)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return Newf(KindUpstreamBadRequest, "%s rejected the request: %s", sErr.Provider, sErr.Message)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return New(KindUpstreamTimeout, "upstream call timed out")
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return Newf(KindUpstreamUnreachable, "%s is unavailable", sErr.Provider)
	default:
		return Newf(KindUpstreamUnexpected, "%s failed: %s", sErr.Provider, sErr.Error())
	}
}
