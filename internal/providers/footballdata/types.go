package footballdata

type matchesResponse struct {
	Matches []matchResponse `json:"matches"`
}

type matchResponse struct {
	UTCDate  string       `json:"utcDate"`
	Status   string       `json:"status"`
	HomeTeam teamResponse `json:"homeTeam"`
	AwayTeam teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	Name string `json:"name"`
}
