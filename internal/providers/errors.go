package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that a provider was not wired at startup.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-success HTTP response from an upstream provider.
// Adapters normalize client-library failures into this type at their boundary
// so nothing downstream has to inspect provider-native error shapes.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// BlockedError reports an upstream completion that produced no usable output:
// a blocked prompt, an empty candidate list, or an empty text field.
type BlockedError struct {
	Provider string
	Reason   string
}

func (e *BlockedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unknown"
	}
	return fmt.Sprintf("%s: completion blocked or empty (reason: %s)", e.Provider, reason)
}

// AsBlockedError attempts to unwrap an error into a BlockedError.
func AsBlockedError(err error) (*BlockedError, bool) {
	var bErr *BlockedError
	if errors.As(err, &bErr) {
		return bErr, true
	}
	return nil, false
}
