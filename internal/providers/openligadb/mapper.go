package openligadb

import (
	"strings"
	"time"

	"football-schedule-service/internal/domain"
)

const missingTeamName = "N/A"

// naiveLayout covers matchDateTime values carrying no zone offset; OpenLigaDB
// publishes a proper UTC timestamp alongside, which is preferred.
const naiveLayout = "2006-01-02T15:04:05"

func mapMatch(m matchResponse, league string) (domain.Match, bool) {
	kickoff, ok := parseKickoff(m)
	if !ok {
		return domain.Match{}, false
	}

	status := domain.StatusScheduled
	if m.MatchIsFinished {
		status = domain.StatusFinished
	}

	return domain.Match{
		League:   league,
		Kickoff:  kickoff,
		HomeTeam: teamNameOrDefault(m.Team1.TeamName),
		AwayTeam: teamNameOrDefault(m.Team2.TeamName),
		Status:   status,
		Source:   sourceName,
	}, true
}

func parseKickoff(m matchResponse) (time.Time, bool) {
	for _, raw := range []string{m.MatchDateTimeUTC, m.MatchDateTime} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.UTC(), true
		}
		if t, err := time.Parse(naiveLayout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func teamNameOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return missingTeamName
	}
	return name
}
