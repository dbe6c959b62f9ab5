package config

// Config holds runtime configuration for the server.
type Config struct {
	Port string
	// Sources selects the fixture source set: "live" or "fixture".
	Sources string
	// FetchStagger spaces out consecutive source launches.
	FetchStagger Duration
	// SourceTimeout bounds a single upstream fixture request.
	SourceTimeout Duration
	FootballData  FootballDataConfig
	OpenLigaDB    OpenLigaDBConfig
	Retry         RetryConfig
	Analysis      AnalysisConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Sources:       envOrDefault(envSources, defaultSources),
		FetchStagger:  durationEnvOrDefault(envFetchStagger, defaultFetchStagger),
		SourceTimeout: loadSourceTimeout(),
		FootballData:  loadFootballData(),
		OpenLigaDB:    loadOpenLigaDB(),
		Retry:         loadRetry(),
		Analysis:      loadAnalysis(),
		Metrics:       loadMetrics(),
	}
}
