package radarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"crosscheck/internal/services"
)

// Movie is the subset of Radarr's movie resource the reconciliation needs.
type Movie struct {
	Title   string     `json:"title"`
	Year    int        `json:"year"`
	HasFile bool       `json:"hasFile"`
	IMDbID  string     `json:"imdbId"`
	File    *MovieFile `json:"movieFile"`
}

// MovieFile describes the on-disk file attached to a movie.
type MovieFile struct {
	RelativePath string  `json:"relativePath"`
	Quality      Quality `json:"quality"`
}

// Quality mirrors Radarr's nested quality envelope.
type Quality struct {
	Quality QualityDefinition `json:"quality"`
}

// QualityDefinition carries the numeric resolution Radarr assigned the file.
type QualityDefinition struct {
	Name       string `json:"name"`
	Resolution int    `json:"resolution"`
}

// Resolution returns the file's vertical resolution, or zero when the movie
// has no file.
func (m Movie) Resolution() int {
	if m.File == nil {
		return 0
	}
	return m.File.Quality.Quality.Resolution
}

// FileName returns the file's relative path, or empty when absent.
func (m Movie) FileName() string {
	if m.File == nil {
		return ""
	}
	return m.File.RelativePath
}

// Lister defines the inventory operation used by the reconciliation engine.
type Lister interface {
	Movies(ctx context.Context) ([]Movie, error)
}

// Client provides access to the Radarr v3 API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lister = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Radarr client.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("radarr api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("radarr base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Movies fetches the full movie inventory.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "radarr", "parse url", c.baseURL, err)
	}
	endpoint.Path = path.Join(endpoint.Path, "api/v3/movie")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "radarr", "list movies", fmt.Sprintf("latency=%v", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrTransport, "radarr", "list movies", fmt.Sprintf("status %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	var movies []Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, services.Wrap(services.ErrTransport, "radarr", "decode movies", "", err)
	}
	return movies, nil
}
