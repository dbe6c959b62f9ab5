package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"football-schedule-service/internal/domain"
	"football-schedule-service/internal/providers"
	"football-schedule-service/internal/timeutil"
)

// Config controls how the football-data.org client reaches the upstream API.
type Config struct {
	BaseURL         string
	APIKey          string
	CompetitionCode string
	League          string
	HTTPClient      *http.Client
	UserAgent       string
	// FilterClientSide switches to the legacy status-filtered endpoint and
	// filters records by date locally instead of asking the upstream to.
	FilterClientSide bool
}

// Client fetches one competition's fixtures from football-data.org and maps
// them to canonical matches.
type Client struct {
	baseURL          string
	apiKey           string
	competition      string
	league           string
	userAgent        string
	filterClientSide bool
	httpClient       httpDoer
	now              func() time.Time
}

// NewClient constructs a football-data.org client for a single competition.
func NewClient(cfg Config) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:          normalizeBaseURL(cfg.BaseURL),
		apiKey:           cfg.APIKey,
		competition:      cfg.CompetitionCode,
		league:           cfg.League,
		userAgent:        userAgent,
		filterClientSide: cfg.FilterClientSide,
		httpClient:       resolveHTTPClient(cfg.HTTPClient),
		now:              time.Now,
	}
}

// FetchMatches retrieves the competition's fixtures for the query date.
// Without an API key the source is simply not queried: the upstream rejects
// anonymous calls, and a missing credential is not a failure.
func (c *Client) FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error) {
	if c.apiKey == "" {
		return []domain.Match{}, nil
	}

	date := timeutil.ResolveDate(query.Date, c.now)

	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   sourceName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload matchesResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	matches := make([]domain.Match, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		match, ok := mapMatch(m, c.league)
		if !ok {
			continue
		}
		if c.filterClientSide && timeutil.UTCDate(match.Kickoff) != date {
			continue
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	url := fmt.Sprintf("%s/competitions/%s/matches", c.baseURL, c.competition)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if c.filterClientSide {
		q.Set("status", "SCHEDULED")
	} else {
		q.Set("dateFrom", date)
		q.Set("dateTo", date)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("X-Auth-Token", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}
