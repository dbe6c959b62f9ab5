// Package gemini adapts the Google Gemini API to the analysis contract.
// Grounding attaches the Google Search tool to the request; when the
// grounded call is rejected, the adapter falls back to a plain completion
// rather than failing the whole request.
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"football-schedule-service/internal/analysis"
	"football-schedule-service/internal/logging"
	"football-schedule-service/internal/providers"
)

const (
	providerName = "gemini"

	defaultModel   = "gemini-pro"
	defaultTimeout = 45 * time.Second
)

// Config controls the Gemini adapter.
type Config struct {
	Model   string
	Timeout time.Duration
}

type generateFunc func(ctx context.Context, credential, model, prompt string, grounded bool) (*genai.GenerateContentResponse, error)

// Client is the Gemini analysis adapter. The credential is caller-supplied
// per request, so the underlying genai client is constructed per call and
// never cached.
type Client struct {
	model    string
	timeout  time.Duration
	logger   *slog.Logger
	generate generateFunc
}

// NewClient constructs a Gemini adapter with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
	c.generate = c.callUpstream
	return c
}

// Analyze sends the prompt to Gemini and returns the completion text.
func (c *Client) Analyze(ctx context.Context, prompt, credential string, grounding bool) (analysis.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.generate(ctx, credential, c.model, prompt, grounding)
	if err != nil && grounding && isBadRequest(err) {
		// The live-search tool is not accepted by every model/API version.
		// A grounded request the upstream rejects falls back to a plain one.
		logging.Warn(logging.FromContext(ctx, c.logger), "grounded call rejected, retrying without live search",
			slog.String(logging.FieldProvider, providerName), "err", err)
		resp, err = c.generate(ctx, credential, c.model, prompt, false)
	}
	if err != nil {
		return analysis.Result{}, normalizeError(err)
	}

	text := extractText(resp)
	if text == "" {
		return analysis.Result{}, &providers.BlockedError{Provider: providerName, Reason: blockReason(resp)}
	}
	return analysis.Result{Text: text}, nil
}

func (c *Client) callUpstream(ctx context.Context, credential, model, prompt string, grounded bool) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{}
	if grounded {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return client.Models.GenerateContent(ctx, model, contents, config)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var text string
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}

func blockReason(resp *genai.GenerateContentResponse) string {
	if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason)
	}
	return "unknown"
}

// normalizeError converts genai-native failures into the shared typed errors
// so the canonical mapper never inspects provider-specific shapes.
func normalizeError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
		}
	}
	return err
}

func isBadRequest(err error) bool {
	if sErr, ok := providers.AsStatusError(normalizeError(err)); ok {
		return sErr.StatusCode == http.StatusBadRequest
	}
	return false
}
