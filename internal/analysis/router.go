package analysis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"football-schedule-service/internal/apperr"
	"football-schedule-service/internal/logging"
	"football-schedule-service/internal/metrics"
)

// Router validates analysis requests and dispatches them to the adapter
// matching the requested provider. All validation happens before any
// upstream call. Grounding is applied only when the caller explicitly asks
// for it; the router never infers it from prompt content.
type Router struct {
	analyzers map[ProviderID]Analyzer
	avail     Availability
	validate  *validator.Validate
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewRouter constructs a Router over the given adapters. A nil adapter marks
// the corresponding backend unavailable regardless of the availability flags.
func NewRouter(gemini, perplexity Analyzer, avail Availability, logger *slog.Logger, recorder *metrics.Recorder) *Router {
	analyzers := make(map[ProviderID]Analyzer, 2)
	if gemini != nil {
		analyzers[ProviderGemini] = gemini
	} else {
		avail.Gemini = false
	}
	if perplexity != nil {
		analyzers[ProviderPerplexity] = perplexity
	} else {
		avail.Perplexity = false
	}

	return &Router{
		analyzers: analyzers,
		avail:     avail,
		validate:  validator.New(),
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// Route runs one analysis request end to end. Every failure is returned as a
// canonical *apperr.Error; the transport shell can rely on its HTTPStatus.
func (r *Router) Route(ctx context.Context, req Request) (Result, error) {
	if cErr := r.validateRequest(req); cErr != nil {
		return Result{}, cErr
	}

	if !r.avail.Available(req.Provider) {
		return Result{}, apperr.Newf(apperr.KindProviderUnavailable, "analysis provider %q is not available", req.Provider)
	}
	analyzer := r.analyzers[req.Provider]

	start := r.now()
	result, err := analyzer.Analyze(ctx, req.Prompt, req.Credential, req.Grounding)
	r.metrics.RecordAnalysisAttempt(string(req.Provider), r.now().Sub(start), err)
	if err != nil {
		cErr := apperr.FromUpstream(err)
		logging.Warn(logging.FromContext(ctx, r.logger), "analysis call failed",
			slog.String(logging.FieldProvider, string(req.Provider)),
			slog.String("kind", string(cErr.Kind)),
			"err", err)
		return Result{}, cErr
	}

	return result, nil
}

// validateRequest checks fields in contract order: prompt, provider id,
// credential. The first violated field decides the canonical kind.
func (r *Router) validateRequest(req Request) *apperr.Error {
	err := r.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.New(apperr.KindMissingInput, "invalid analysis request")
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
	}
	switch {
	case failed["Prompt"]:
		return apperr.New(apperr.KindMissingInput, "prompt must not be empty")
	case failed["Provider"]:
		return apperr.Newf(apperr.KindMissingInput, "unknown analysis provider %q", req.Provider)
	case failed["Credential"]:
		return apperr.Newf(apperr.KindMissingCredential, "no API key supplied for provider %q", req.Provider)
	default:
		return apperr.New(apperr.KindMissingInput, "invalid analysis request")
	}
}
