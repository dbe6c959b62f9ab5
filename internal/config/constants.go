package config

const (
	envPort         = "PORT"
	envSources      = "SOURCES"
	envFetchStagger = "FETCH_STAGGER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "8080"
	// Deterministic source set so the service runs without upstream credentials.
	defaultSources = "fixture"
	// Delay between consecutive upstream launches. Off by default; the
	// OpenLigaDB operators ask scrapers to space requests about one second
	// apart, so deployments leaning on that source should set FETCH_STAGGER=1s.
	defaultFetchStagger = Duration(0)
	defaultMetricsPort  = "9090"
)
