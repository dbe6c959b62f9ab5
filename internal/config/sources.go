package config

import "time"

const (
	envFootballDataBaseURL = "FOOTBALL_DATA_BASE_URL"
	envFootballDataAPIKey  = "FOOTBALL_DATA_API_KEY"
	envOpenLigaDBBaseURL   = "OPENLIGADB_BASE_URL"
	envSourceTimeout       = "SOURCE_TIMEOUT"
	envRetryAttempts       = "PROVIDER_RETRY_ATTEMPTS"
	envRetryInterval       = "PROVIDER_RETRY_INTERVAL"

	defaultFootballDataBaseURL = "https://api.football-data.org/v4"
	defaultOpenLigaDBBaseURL   = "https://api.openligadb.de"
	defaultSourceTimeout       = 10 * Duration(time.Second)
	defaultRetryAttempts       = 3
	defaultRetryInterval       = 500 * Duration(time.Millisecond)
)

// FootballDataConfig controls how we talk to the football-data.org API.
type FootballDataConfig struct {
	BaseURL string
	APIKey  string
}

// OpenLigaDBConfig controls how we talk to the OpenLigaDB API.
type OpenLigaDBConfig struct {
	BaseURL string
}

func loadSourceTimeout() Duration {
	return durationEnvOrDefault(envSourceTimeout, defaultSourceTimeout)
}

// RetryConfig controls the retry decorator wrapped around live sources.
type RetryConfig struct {
	Attempts int
	Interval Duration
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL: envOrDefault(envFootballDataBaseURL, defaultFootballDataBaseURL),
		APIKey:  envOrDefault(envFootballDataAPIKey, ""),
	}
}

func loadOpenLigaDB() OpenLigaDBConfig {
	return OpenLigaDBConfig{
		BaseURL: envOrDefault(envOpenLigaDBBaseURL, defaultOpenLigaDBBaseURL),
	}
}

func loadRetry() RetryConfig {
	return RetryConfig{
		Attempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Interval: durationEnvOrDefault(envRetryInterval, defaultRetryInterval),
	}
}
