// Package perplexity adapts the Perplexity chat-completions API to the
// analysis contract. Perplexity models search the live web by default, so
// the grounding flag needs no request shaping here.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"football-schedule-service/internal/analysis"
	"football-schedule-service/internal/providers"
)

const (
	providerName = "perplexity"

	defaultBaseURL = "https://api.perplexity.ai"
	defaultModel   = "sonar"
	defaultTimeout = 45 * time.Second
)

// Config controls the Perplexity adapter.
type Config struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the Perplexity analysis adapter.
type Client struct {
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient constructs a Perplexity adapter with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		timeout:    timeout,
		httpClient: httpClient,
	}
}

// Analyze sends the prompt to Perplexity and returns the completion text.
func (c *Client) Analyze(ctx context.Context, prompt, credential string, grounding bool) (analysis.Result, error) {
	_ = grounding // built into the model

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return analysis.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return analysis.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return analysis.Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return analysis.Result{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return analysis.Result{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return analysis.Result{}, err
	}
	if payload.Error != nil {
		return analysis.Result{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: payload.Error.Code,
			Message:    payload.Error.Message,
		}
	}
	if len(payload.Choices) == 0 {
		return analysis.Result{}, &providers.BlockedError{Provider: providerName, Reason: "empty candidate list"}
	}

	text := strings.TrimSpace(payload.Choices[0].Message.Content)
	if text == "" {
		return analysis.Result{}, &providers.BlockedError{Provider: providerName, Reason: "empty completion text"}
	}
	return analysis.Result{Text: text}, nil
}
