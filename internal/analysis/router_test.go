package analysis

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"football-schedule-service/internal/apperr"
	"football-schedule-service/internal/metrics"
	"football-schedule-service/internal/providers"
)

type stubAnalyzer struct {
	result    Result
	err       error
	gotPrompt string
	gotCred   string
	gotGround bool
	calls     int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, prompt, credential string, grounding bool) (Result, error) {
	s.calls++
	s.gotPrompt = prompt
	s.gotCred = credential
	s.gotGround = grounding
	return s.result, s.err
}

func bothAvailable() Availability {
	return Availability{Gemini: true, Perplexity: true}
}

func TestRouteDispatchesToRequestedProvider(t *testing.T) {
	gemini := &stubAnalyzer{result: Result{Text: "from gemini"}}
	perplexity := &stubAnalyzer{result: Result{Text: "from perplexity"}}
	router := NewRouter(gemini, perplexity, bothAvailable(), nil, metrics.NewRecorder())

	result, err := router.Route(context.Background(), Request{
		Prompt:     "summarize today's fixtures",
		Provider:   ProviderPerplexity,
		Credential: "pk-123",
		Grounding:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "from perplexity", result.Text)
	assert.Equal(t, 0, gemini.calls)
	assert.Equal(t, 1, perplexity.calls)
	assert.Equal(t, "pk-123", perplexity.gotCred)
	assert.True(t, perplexity.gotGround)
}

func TestRouteRejectsEmptyPrompt(t *testing.T) {
	router := NewRouter(&stubAnalyzer{}, &stubAnalyzer{}, bothAvailable(), nil, metrics.NewRecorder())

	_, err := router.Route(context.Background(), Request{
		Provider:   ProviderGemini,
		Credential: "key",
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindMissingInput, cErr.Kind)
	assert.Equal(t, http.StatusBadRequest, cErr.HTTPStatus)
}

func TestRouteRejectsUnknownProvider(t *testing.T) {
	router := NewRouter(&stubAnalyzer{}, &stubAnalyzer{}, bothAvailable(), nil, metrics.NewRecorder())

	_, err := router.Route(context.Background(), Request{
		Prompt:     "hello",
		Provider:   ProviderID("claude"),
		Credential: "key",
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindMissingInput, cErr.Kind)
}

func TestRouteRejectsMissingCredential(t *testing.T) {
	gemini := &stubAnalyzer{}
	router := NewRouter(gemini, &stubAnalyzer{}, bothAvailable(), nil, metrics.NewRecorder())

	_, err := router.Route(context.Background(), Request{
		Prompt:   "hello",
		Provider: ProviderGemini,
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindMissingCredential, cErr.Kind)
	assert.Equal(t, http.StatusBadRequest, cErr.HTTPStatus)
	assert.Equal(t, 0, gemini.calls, "validation must run before any upstream call")
}

func TestRouteUnavailableProvider(t *testing.T) {
	router := NewRouter(&stubAnalyzer{}, nil, bothAvailable(), nil, metrics.NewRecorder())

	_, err := router.Route(context.Background(), Request{
		Prompt:     "hello",
		Provider:   ProviderPerplexity,
		Credential: "key",
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindProviderUnavailable, cErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, cErr.HTTPStatus)
}

func TestRouteMapsUpstreamAuthFailure(t *testing.T) {
	gemini := &stubAnalyzer{err: &providers.StatusError{Provider: "gemini", StatusCode: http.StatusForbidden}}
	recorder := metrics.NewRecorder()
	router := NewRouter(gemini, &stubAnalyzer{}, bothAvailable(), nil, recorder)

	_, err := router.Route(context.Background(), Request{
		Prompt:     "hello",
		Provider:   ProviderGemini,
		Credential: "bad-key",
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindUpstreamAuthFailed, cErr.Kind)
	assert.Equal(t, http.StatusForbidden, cErr.HTTPStatus)
	assert.Equal(t, 1, recorder.AnalysisSnapshot("gemini").Errors)
}

func TestRouteMapsBlockedCompletion(t *testing.T) {
	gemini := &stubAnalyzer{err: &providers.BlockedError{Provider: "gemini", Reason: "SAFETY"}}
	router := NewRouter(gemini, &stubAnalyzer{}, bothAvailable(), nil, metrics.NewRecorder())

	_, err := router.Route(context.Background(), Request{
		Prompt:     "hello",
		Provider:   ProviderGemini,
		Credential: "key",
	})
	cErr := requireCanonical(t, err)
	assert.Equal(t, apperr.KindUpstreamBlocked, cErr.Kind)
	assert.Contains(t, cErr.Message, "SAFETY")
}

func TestAvailability(t *testing.T) {
	avail := Availability{Gemini: true}
	assert.True(t, avail.Available(ProviderGemini))
	assert.False(t, avail.Available(ProviderPerplexity))
	assert.False(t, avail.Available(ProviderID("other")))
}

func requireCanonical(t *testing.T, err error) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	var cErr *apperr.Error
	require.True(t, errors.As(err, &cErr), "expected canonical error, got %T", err)
	return cErr
}
