package footballdata

import "time"

const (
	sourceName = "Football-Data.org"

	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "football-schedule-service/1.0"

	// CompetitionPremierLeague and CompetitionLaLiga are the football-data.org
	// competition codes this service queries by default.
	CompetitionPremierLeague = "PL"
	CompetitionLaLiga        = "PD"
)
