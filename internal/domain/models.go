package domain

import "time"

// MatchStatus mirrors the canonical lifecycle states for a fixture.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusInPlay    MatchStatus = "IN_PLAY"
	StatusFinished  MatchStatus = "FINISHED"
	StatusUnknown   MatchStatus = "UNKNOWN"
)

// Match is the canonical fixture shape exposed by the service.
// Kickoff is always an absolute UTC instant; records whose kickoff cannot be
// parsed are dropped by the adapters and never reach this type.
type Match struct {
	League   string      `json:"league"`
	Kickoff  time.Time   `json:"date"`
	HomeTeam string      `json:"home_team"`
	AwayTeam string      `json:"away_team"`
	Status   MatchStatus `json:"status"`
	Source   string      `json:"source"`
}

// FixtureQuery selects the calendar day fixtures are wanted for.
type FixtureQuery struct {
	// Date is a YYYY-MM-DD string. Empty means "today" in UTC.
	Date string
}
