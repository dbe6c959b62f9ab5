package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"football-schedule-service/internal/analysis"
	"football-schedule-service/internal/domain"
)

type nowFunc func() time.Time

// MatchLister is the read side of the fixture aggregator.
type MatchLister interface {
	Aggregate(ctx context.Context, query domain.FixtureQuery) []domain.Match
}

// AnalysisRouter dispatches analysis requests to an LLM backend.
type AnalysisRouter interface {
	Route(ctx context.Context, req analysis.Request) (analysis.Result, error)
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	matches MatchLister
	router  AnalysisRouter
	// serverPerplexityKey, when set, overrides any caller-supplied Perplexity
	// credential.
	serverPerplexityKey string
	logger              *slog.Logger
	now                 nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(matches MatchLister, router AnalysisRouter, serverPerplexityKey string, logger *slog.Logger) *Handler {
	return &Handler{
		matches:             matches,
		router:              router,
		serverPerplexityKey: serverPerplexityKey,
		logger:              logger,
		now:                 time.Now,
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes). The
// service holds no warm-up state, so readiness tracks liveness.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
