package footballdata

import (
	"strings"
	"time"

	"football-schedule-service/internal/domain"
)

const missingTeamName = "N/A"

// mapMatch converts one upstream record to the canonical shape. A record
// whose kickoff timestamp is absent or unparsable is dropped, not emitted
// with a sentinel.
func mapMatch(m matchResponse, league string) (domain.Match, bool) {
	kickoff, err := time.Parse(time.RFC3339, m.UTCDate)
	if err != nil {
		return domain.Match{}, false
	}

	return domain.Match{
		League:   league,
		Kickoff:  kickoff.UTC(),
		HomeTeam: teamNameOrDefault(m.HomeTeam.Name),
		AwayTeam: teamNameOrDefault(m.AwayTeam.Name),
		Status:   mapStatus(m.Status),
		Source:   sourceName,
	}, true
}

func teamNameOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return missingTeamName
	}
	return name
}

func mapStatus(status string) domain.MatchStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "SCHEDULED", "TIMED":
		return domain.StatusScheduled
	case "IN_PLAY", "PAUSED", "LIVE":
		return domain.StatusInPlay
	case "FINISHED", "AWARDED":
		return domain.StatusFinished
	default:
		return domain.StatusUnknown
	}
}
