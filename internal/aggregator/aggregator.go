// Package aggregator fans a fixture query out to every configured source and
// merges the results. Partial data beats total failure for a display feed, so
// a failing source contributes zero matches and never aborts its siblings.
package aggregator

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"football-schedule-service/internal/domain"
	"football-schedule-service/internal/logging"
	"football-schedule-service/internal/metrics"
	"football-schedule-service/internal/providers"
)

// Source pairs a configured source name with its adapter.
type Source struct {
	Name     string
	Provider providers.MatchProvider
}

// Aggregator queries all configured fixture sources for one calendar day.
type Aggregator struct {
	sources []Source
	logger  *slog.Logger
	metrics *metrics.Recorder
	// stagger spaces out source launches for upstreams known to throttle;
	// zero means all sources are queried at once.
	stagger time.Duration
	now     func() time.Time
}

// New constructs an Aggregator over the given sources.
func New(sources []Source, logger *slog.Logger, recorder *metrics.Recorder, stagger time.Duration) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger,
		metrics: recorder,
		stagger: stagger,
		now:     time.Now,
	}
}

// Aggregate fetches matches from every source concurrently and concatenates
// the results in source-configuration order. It never fails: per-source
// errors are logged, recorded, and treated as "zero matches from this
// source". No deduplication is applied across sources; the configured
// competitions are disjoint, so a fixture reachable from two sources would
// appear twice (known limitation).
func (a *Aggregator) Aggregate(ctx context.Context, query domain.FixtureQuery) []domain.Match {
	results := make([][]domain.Match, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		delay := time.Duration(i) * a.stagger
		g.Go(func() error {
			if delay > 0 {
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(delay):
				}
			}

			start := a.now()
			matches, err := src.Provider.FetchMatches(ctx, query)
			a.metrics.RecordSourceAttempt(src.Name, a.now().Sub(start), err)
			if err != nil {
				logging.Warn(logging.FromContext(ctx, a.logger), "source fetch failed",
					slog.String(logging.FieldSource, src.Name),
					slog.String(logging.FieldDate, query.Date),
					"err", err)
				return nil
			}

			logging.Info(logging.FromContext(ctx, a.logger), "source fetch complete",
				slog.String(logging.FieldSource, src.Name),
				slog.String(logging.FieldDate, query.Date),
				slog.Int(logging.FieldCount, len(matches)))
			results[i] = matches
			return nil
		})
	}
	_ = g.Wait() // goroutines swallow their own errors

	merged := make([]domain.Match, 0)
	for _, matches := range results {
		merged = append(merged, matches...)
	}
	return merged
}
