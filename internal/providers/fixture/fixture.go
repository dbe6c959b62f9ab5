package fixture

import (
	"context"
	"time"

	"football-schedule-service/internal/domain"
	"football-schedule-service/internal/timeutil"
)

// Provider returns a static set of matches useful for local development and
// bootstrapping without upstream credentials.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchMatches returns a deterministic set of example matches on the query date.
func (p *Provider) FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error) {
	_ = ctx

	date := timeutil.ResolveDate(query.Date, p.now)
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}
	day = day.UTC()

	return []domain.Match{
		{
			League:   "Premier League",
			Kickoff:  day.Add(15 * time.Hour),
			HomeTeam: "Arsenal FC",
			AwayTeam: "Liverpool FC",
			Status:   domain.StatusScheduled,
			Source:   "fixture",
		},
		{
			League:   "Bundesliga",
			Kickoff:  day.Add(17*time.Hour + 30*time.Minute),
			HomeTeam: "FC Bayern München",
			AwayTeam: "Borussia Dortmund",
			Status:   domain.StatusScheduled,
			Source:   "fixture",
		},
	}, nil
}
