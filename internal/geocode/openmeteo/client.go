// Package openmeteo implements the geocode.Provider interface against the
// Open-Meteo geocoding API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/geocode"
	"github.com/skycast/skycast/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "open-meteo-geocoding"

	// DefaultBaseURL is the Open-Meteo geocoding API base URL.
	DefaultBaseURL = "https://geocoding-api.open-meteo.com/v1"
)

// ClientConfig holds configuration for the Open-Meteo geocoding client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional).
	BaseURL string

	// Language is the response language hint (optional, defaults to "en").
	Language string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo geocoding API client.
type Client struct {
	baseURL    string
	language   string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo geocoding client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	language := cfg.Language
	if language == "" {
		language = "en"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		language:   language,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Search returns candidates for a free-text query in provider order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]geocode.Candidate, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(limit))
	params.Set("language", c.language)

	reqURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var omResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	candidates := make([]geocode.Candidate, 0, len(omResp.Results))
	for _, r := range omResp.Results {
		candidates = append(candidates, geocode.Candidate{
			Name:        r.Name,
			AdminRegion: r.Admin1,
			Country:     r.Country,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}

	return candidates, nil
}

// Open-Meteo geocoding API response structures.

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}
