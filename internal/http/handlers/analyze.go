package handlers

import (
	"encoding/json"
	"io"
	nethttp "net/http"

	"football-schedule-service/internal/analysis"
	"football-schedule-service/internal/apperr"
	"football-schedule-service/internal/logging"
)

const maxAnalyzeBodyBytes = 1 << 20

// analyzeRequest is the wire shape browser clients send. The credential for
// each backend travels in its own field; unknown fields are ignored.
type analyzeRequest struct {
	Prompt           string `json:"prompt"`
	Model            string `json:"model"`
	GeminiAPIKey     string `json:"geminiApiKey"`
	PerplexityAPIKey string `json:"perplexityApiKey"`
	UseGrounding     bool   `json:"useGrounding"`
}

// analyzeResponse mirrors the Gemini candidates shape regardless of which
// backend produced the text, so clients parse one format.
type analyzeResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
}

type candidatePart struct {
	Text string `json:"text"`
}

// Analyze runs one LLM analysis request end to end.
func (h *Handler) Analyze(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req analyzeRequest
	body := io.LimitReader(r.Body, maxAnalyzeBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	provider := analysis.ProviderID(req.Model)
	if req.Model == "" {
		provider = analysis.ProviderGemini
	}

	result, err := h.router.Route(r.Context(), analysis.Request{
		Prompt:     req.Prompt,
		Provider:   provider,
		Credential: h.resolveCredential(provider, req),
		Grounding:  req.UseGrounding,
	})
	if err != nil {
		cErr := apperr.From(err)
		if logger := loggerFromContext(r, h.logger); logger != nil {
			logger.Warn("analysis request failed",
				logging.FieldProvider, string(provider),
				"kind", string(cErr.Kind))
		}
		writeError(w, r, cErr.HTTPStatus, cErr.Message, h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, analyzeResponse{
		Candidates: []candidate{{
			Content: candidateContent{Parts: []candidatePart{{Text: result.Text}}},
		}},
	}, h.logger)
}

// resolveCredential picks the API key for the requested backend. A
// server-side Perplexity key wins over the caller's so deployments can keep
// the credential out of the browser entirely.
func (h *Handler) resolveCredential(provider analysis.ProviderID, req analyzeRequest) string {
	switch provider {
	case analysis.ProviderPerplexity:
		if h.serverPerplexityKey != "" {
			return h.serverPerplexityKey
		}
		return req.PerplexityAPIKey
	default:
		return req.GeminiAPIKey
	}
}
