package openligadb

import "time"

const (
	sourceName = "OpenLigaDB"

	defaultBaseURL     = "https://api.openligadb.de"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "football-schedule-service/1.0"

	// LeagueBundesliga and LeagueBundesliga2 are the OpenLigaDB league
	// shortcuts this service queries by default.
	LeagueBundesliga  = "bl1"
	LeagueBundesliga2 = "bl2"
)
