package perplexity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"football-schedule-service/internal/providers"
)

func TestAnalyzeSendsChatRequest(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"the answer"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	result, err := client.Analyze(context.Background(), "what happened today", "pk-1", true)
	require.NoError(t, err)
	assert.Equal(t, "the answer", result.Text)
	assert.Equal(t, "Bearer pk-1", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, defaultModel, gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "what happened today", gotBody.Messages[0].Content)
}

func TestAnalyzeUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.Analyze(context.Background(), "prompt", "bad", false)
	sErr, ok := providers.AsStatusError(err)
	require.True(t, ok, "expected StatusError, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, sErr.StatusCode)
	assert.Equal(t, providerName, sErr.Provider)
}

func TestAnalyzeBodyLevelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error","code":503}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.Analyze(context.Background(), "prompt", "key", false)
	sErr, ok := providers.AsStatusError(err)
	require.True(t, ok, "expected StatusError, got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, sErr.StatusCode)
	assert.Equal(t, "model overloaded", sErr.Message)
}

func TestAnalyzeEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.Analyze(context.Background(), "prompt", "key", false)
	bErr, ok := providers.AsBlockedError(err)
	require.True(t, ok, "expected BlockedError, got %v", err)
	assert.Equal(t, providerName, bErr.Provider)
}

func TestAnalyzeEmptyCompletionText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.Analyze(context.Background(), "prompt", "key", false)
	_, ok := providers.AsBlockedError(err)
	require.True(t, ok, "expected BlockedError, got %v", err)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultTimeout, client.timeout)
}
