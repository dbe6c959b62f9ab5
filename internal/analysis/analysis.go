// Package analysis routes natural-language analysis requests to one of
// several interchangeable LLM backends and normalizes both the request shape
// and the failure taxonomy per provider.
package analysis

import "context"

// ProviderID identifies one analysis backend.
type ProviderID string

const (
	ProviderGemini     ProviderID = "gemini"
	ProviderPerplexity ProviderID = "perplexity"
)

// Request is a caller-supplied analysis request. No server-side default
// credential is assumed; the credential travels with each call and is never
// cached across requests.
type Request struct {
	Prompt     string     `validate:"required"`
	Provider   ProviderID `validate:"required,oneof=gemini perplexity"`
	Credential string     `validate:"required"`
	Grounding  bool
}

// Result is the canonical analysis output, regardless of which backend
// produced it.
type Result struct {
	Text string
}

// Analyzer is implemented by one LLM backend adapter. Adapters own their
// upstream's request/response shape and report failures as the typed errors
// in internal/providers; they never decide HTTP status codes themselves.
type Analyzer interface {
	Analyze(ctx context.Context, prompt, credential string, grounding bool) (Result, error)
}

// Availability records which analysis backends were resolved at startup.
// Routing to an unavailable backend is a first-class canonical error, not a
// simulated upstream failure.
type Availability struct {
	Gemini     bool
	Perplexity bool
}

// Available reports whether the given backend was resolved at startup.
func (a Availability) Available(id ProviderID) bool {
	switch id {
	case ProviderGemini:
		return a.Gemini
	case ProviderPerplexity:
		return a.Perplexity
	default:
		return false
	}
}
