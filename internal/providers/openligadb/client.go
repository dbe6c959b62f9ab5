package openligadb

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

// Config controls how the OpenLigaDB client reaches the upstream API.
type Config struct {
	BaseURL    string
	Shortcut   string // league shortcut, e.g. "bl1"
	League     string // display name, e.g. "Bundesliga"
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches one league's fixtures from OpenLigaDB. The upstream has no
// server-side date filter, so the client fetches the season window and
// filters records to the query date locally.
type Client struct {
	baseURL    string
	shortcut   string
	league     string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an OpenLigaDB client for a single league.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		shortcut:   cfg.Shortcut,
		league:     cfg.League,
		userAgent:  userAgent,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// FetchMatches retrieves the league's fixtures falling on the query date.
// OpenLigaDB requires no credential.
func (c *Client) FetchMatches(ctx context.Context, query domain.FixtureQuery) ([]domain.Match, error) {
	date := timeutil.ResolveDate(query.Date, c.now)
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/getmatchdata/%s/%d", c.baseURL, c.shortcut, day.Year())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

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

	var payload []matchResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	matches := make([]domain.Match, 0)
	for _, m := range payload {
		match, ok := mapMatch(m, c.league)
		if !ok {
			continue
		}
		if timeutil.UTCDate(match.Kickoff) != date {
			continue
		}
		matches = append(matches, match)
	}

	return matches, nil
}
