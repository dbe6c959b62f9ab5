package openligadb

// OpenLigaDB returns a bare array of match objects. Both local and UTC
// kickoff timestamps are present on well-formed records; the UTC one is
// preferred when available.
type matchResponse struct {
	MatchDateTime    string       `json:"matchDateTime"`
	MatchDateTimeUTC string       `json:"matchDateTimeUTC"`
	Team1            teamResponse `json:"team1"`
	Team2            teamResponse `json:"team2"`
	MatchIsFinished  bool         `json:"matchIsFinished"`
}

type teamResponse struct {
	TeamName string `json:"teamName"`
}
