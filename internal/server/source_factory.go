package server

import (
	"log/slog"
	"net/http"

	"football-schedule-service/internal/aggregator"
	"football-schedule-service/internal/config"
	"football-schedule-service/internal/providers"
	"football-schedule-service/internal/providers/fixture"
	"football-schedule-service/internal/providers/footballdata"
	"football-schedule-service/internal/providers/openligadb"
)

// sourceFactory assembles the fixture sources with the shared retry wrapper.
type sourceFactory struct {
	logger *slog.Logger
}

func newSourceFactory(logger *slog.Logger) sourceFactory {
	return sourceFactory{logger: logger}
}

// build resolves the configured source set. Anything other than "live" falls
// back to the deterministic fixture source so a misconfigured deployment
// still serves data.
func (f sourceFactory) build(cfg config.Config) []aggregator.Source {
	if cfg.Sources != "live" {
		return []aggregator.Source{{Name: "fixture", Provider: fixture.New()}}
	}

	// One shared client so every source honors the same request bound.
	httpClient := &http.Client{Timeout: cfg.SourceTimeout}

	sources := []aggregator.Source{
		{
			Name: "football-data-pl",
			Provider: footballdata.NewClient(footballdata.Config{
				BaseURL:         cfg.FootballData.BaseURL,
				APIKey:          cfg.FootballData.APIKey,
				CompetitionCode: footballdata.CompetitionPremierLeague,
				League:          "Premier League",
				HTTPClient:      httpClient,
			}),
		},
		{
			Name: "football-data-pd",
			Provider: footballdata.NewClient(footballdata.Config{
				BaseURL:         cfg.FootballData.BaseURL,
				APIKey:          cfg.FootballData.APIKey,
				CompetitionCode: footballdata.CompetitionLaLiga,
				League:          "La Liga",
				HTTPClient:      httpClient,
			}),
		},
		{
			Name: "openligadb-bl1",
			Provider: openligadb.NewClient(openligadb.Config{
				BaseURL:    cfg.OpenLigaDB.BaseURL,
				Shortcut:   openligadb.LeagueBundesliga,
				League:     "Bundesliga",
				HTTPClient: httpClient,
			}),
		},
		{
			Name: "openligadb-bl2",
			Provider: openligadb.NewClient(openligadb.Config{
				BaseURL:    cfg.OpenLigaDB.BaseURL,
				Shortcut:   openligadb.LeagueBundesliga2,
				League:     "2. Bundesliga",
				HTTPClient: httpClient,
			}),
		},
	}

	for i, src := range sources {
		sources[i].Provider = providers.NewRetryingProvider(
			src.Provider, src.Name, f.logger, cfg.Retry.Attempts, cfg.Retry.Interval)
	}
	return sources
}
