package config

import "time"

const (
	envPerplexityAPIKey  = "PERPLEXITY_API_KEY"
	envPerplexityBaseURL = "PERPLEXITY_BASE_URL"
	envPerplexityModel   = "PERPLEXITY_MODEL"
	envGeminiModel       = "GEMINI_MODEL"
	envAnalysisTimeout   = "ANALYSIS_TIMEOUT"

	defaultPerplexityBaseURL = "https://api.perplexity.ai"
	defaultPerplexityModel   = "sonar"
	defaultGeminiModel       = "gemini-pro"
	defaultAnalysisTimeout   = 45 * Duration(time.Second)
)

// AnalysisConfig controls the LLM analysis backends. PerplexityAPIKey is a
// server-side credential that takes precedence over any caller-supplied key.
type AnalysisConfig struct {
	PerplexityAPIKey  string
	PerplexityBaseURL string
	PerplexityModel   string
	GeminiModel       string
	Timeout           Duration
}

func loadAnalysis() AnalysisConfig {
	return AnalysisConfig{
		PerplexityAPIKey:  envOrDefault(envPerplexityAPIKey, ""),
		PerplexityBaseURL: envOrDefault(envPerplexityBaseURL, defaultPerplexityBaseURL),
		PerplexityModel:   envOrDefault(envPerplexityModel, defaultPerplexityModel),
		GeminiModel:       envOrDefault(envGeminiModel, defaultGeminiModel),
		Timeout:           durationEnvOrDefault(envAnalysisTimeout, defaultAnalysisTimeout),
	}
}
