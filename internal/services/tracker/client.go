package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crosscheck/internal/services"
)

// Candidate is one release the tracker reports for a movie.
type Candidate struct {
	Name       string `json:"name"`
	Resolution string `json:"resolution"`
}

// SearchResponse models the tracker's search payload. A missing or null
// "data" field decodes to an empty candidate list.
type SearchResponse struct {
	Data []Candidate `json:"data"`
}

// Searcher defines the tracker operation used by the lookup gateway. The raw
// body is returned alongside the decoded response so callers can cache the
// payload exactly as the tracker sent it.
type Searcher interface {
	Search(ctx context.Context, imdbID, resolution string) (*SearchResponse, json.RawMessage, error)
}

// Client provides access to the tracker search API.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

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

// New creates a tracker client.
func New(baseURL, apiToken string, opts ...Option) (*Client, error) {
	apiToken = strings.TrimSpace(apiToken)
	if apiToken == "" {
		return nil, errors.New("tracker api token required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tracker base url required")
	}
	client := &Client{
		apiToken:   apiToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries the tracker for releases of one movie at one resolution.
func (c *Client) Search(ctx context.Context, imdbID, resolution string) (*SearchResponse, json.RawMessage, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, nil, errors.New("imdb id must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/api/torrents")
	if err != nil {
		return nil, nil, services.Wrap(services.ErrConfiguration, "tracker", "parse url", c.baseURL, err)
	}
	params := url.Values{}
	params.Set("imdb_id", imdbID)
	params.Set("resolution", resolution)
	params.Set("api_token", c.apiToken)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrTransport, "tracker", "search", fmt.Sprintf("imdb_id=%s latency=%v", imdbID, latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, services.Wrap(services.ErrTransport, "tracker", "search", fmt.Sprintf("imdb_id=%s status %d (latency=%v)", imdbID, resp.StatusCode, latency), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrTransport, "tracker", "read search response", fmt.Sprintf("imdb_id=%s", imdbID), err)
	}

	var payload SearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, services.Wrap(services.ErrTransport, "tracker", "decode search response", fmt.Sprintf("imdb_id=%s", imdbID), err)
	}
	return &payload, json.RawMessage(body), nil
}

// Decode parses a cached payload back into a SearchResponse.
func Decode(payload json.RawMessage) (*SearchResponse, error) {
	var response SearchResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("decode cached search response: %w", err)
	}
	return &response, nil
}
