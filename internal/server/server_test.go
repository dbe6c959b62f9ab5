package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"football-schedule-service/internal/aggregator"
	"football-schedule-service/internal/config"
	"football-schedule-service/internal/domain"
	"football-schedule-service/internal/metrics"
)

type stubProvider struct {
	matches []domain.Match
	err     error
}

func (s *stubProvider) FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewServerServesHealth(t *testing.T) {
	srv := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestServerServesMatchesFromInjectedSources(t *testing.T) {
	sources := []aggregator.Source{
		{Name: "stub", Provider: &stubProvider{matches: []domain.Match{{
			League:   "Premier League",
			Kickoff:  time.Date(2025, 8, 30, 15, 0, 0, 0, time.UTC),
			HomeTeam: "Arsenal FC",
			AwayTeam: "Liverpool FC",
			Status:   domain.StatusScheduled,
			Source:   "stub",
		}}}},
	}
	srv := newServerWithSources(testConfig(), nil, sources, metrics.NewRecorder())

	req := httptest.NewRequest(http.MethodGet, "/api/get-matches?date=2025-08-30", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var matches []domain.Match
	if err := json.NewDecoder(rec.Body).Decode(&matches); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(matches) != 1 || matches[0].HomeTeam != "Arsenal FC" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestServerSetsCORSHeaders(t *testing.T) {
	srv := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected CORS headers on preflight")
	}
}

func TestRunShutsDownGracefully(t *testing.T) {
	stub := &stubHTTPServer{addr: ":0"}
	srv := newServerWithDeps(testConfig(), nil, stub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to return after cancellation")
	}
	if stub.shutdownCalls != 1 {
		t.Fatalf("expected one shutdown call, got %d", stub.shutdownCalls)
	}
}
