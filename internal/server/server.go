// Package server wires configuration, sources, analysis backends, telemetry,
// and the HTTP surface into one runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"football-schedule-service/internal/aggregator"
	"football-schedule-service/internal/analysis"
	"football-schedule-service/internal/analysis/gemini"
	"football-schedule-service/internal/analysis/perplexity"
	"football-schedule-service/internal/config"
	httpserver "football-schedule-service/internal/http"
	"football-schedule-service/internal/http/handlers"
	"football-schedule-service/internal/http/middleware"
	"football-schedule-service/internal/logging"
	"football-schedule-service/internal/metrics"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	aggregator     *aggregator.Aggregator
	analysisRouter *analysis.Router
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server with default source and analysis wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSources(cfg, logger, nil, nil)
}

func newServerWithSources(cfg config.Config, logger *slog.Logger, sources []aggregator.Source, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if sources == nil {
		sources = newSourceFactory(logger).build(cfg)
	}
	agg := aggregator.New(sources, logger, recorder, cfg.FetchStagger)
	router := buildAnalysisRouter(cfg, logger, recorder)
	httpSrv := buildHTTPServer(cfg, agg, router, logger, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		aggregator:     agg,
		analysisRouter: router,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildAnalysisRouter(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *analysis.Router {
	geminiClient := gemini.NewClient(gemini.Config{
		Model:   cfg.Analysis.GeminiModel,
		Timeout: cfg.Analysis.Timeout,
	}, logger)
	perplexityClient := perplexity.NewClient(perplexity.Config{
		BaseURL: cfg.Analysis.PerplexityBaseURL,
		Model:   cfg.Analysis.PerplexityModel,
		Timeout: cfg.Analysis.Timeout,
	})

	// Credentials travel per request, so both backends are routable at startup.
	avail := analysis.Availability{Gemini: true, Perplexity: true}
	return analysis.NewRouter(geminiClient, perplexityClient, avail, logger, recorder)
}

func buildHTTPServer(cfg config.Config, agg *aggregator.Aggregator, router *analysis.Router, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(agg, router, cfg.Analysis.PerplexityAPIKey, logger)
	mux := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORSMiddleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
