package providers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"football-schedule-service/internal/domain"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retryingProvider wraps a MatchProvider with retry/backoff behavior.
// Client-side failures (4xx) are treated as permanent; retrying them would
// only burn upstream quota.
type retryingProvider struct {
	inner       MatchProvider
	name        string
	logger      *slog.Logger
	maxAttempts uint64
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// interval are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, name string, logger *slog.Logger, maxAttempts int, interval time.Duration) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingProvider{
		inner:       inner,
		name:        name,
		logger:      logger,
		maxAttempts: uint64(maxAttempts),
		interval:    interval,
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error) {
	var matches []domain.Match
	attempt := 0

	op := func() error {
		attempt++
		fetched, err := r.inner.FetchMatches(ctx, query)
		if err == nil {
			matches = fetched
			return nil
		}
		if sErr, ok := AsStatusError(err); ok && isPermanentStatus(sErr.StatusCode) {
			return backoff.Permanent(err)
		}
		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.interval
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, r.maxAttempts-1), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch failed",
			"attempts", attempt, "err", err)
		return nil, err
	}
	return matches, nil
}

func isPermanentStatus(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError &&
		code != http.StatusRequestTimeout && code != http.StatusTooManyRequests
}
