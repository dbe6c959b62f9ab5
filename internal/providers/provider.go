package providers

import (
	"context"

	"football-schedule-service/internal/domain"
)

// MatchProvider defines how upstream fixture data is fetched and normalized.
// Implementations interpret an empty query date as "today" in UTC, and must
// return an empty slice (not an error) when a required credential is absent.
type MatchProvider interface {
	FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error)
}
