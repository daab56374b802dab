// Package openmeteo implements the forecast.Provider interface against the
// Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/forecast"
	"github.com/skycast/skycast/internal/provider/resilience"
)

const (
	// ProviderName identifies this forecast provider.
	ProviderName = "open-meteo"

	// DefaultBaseURL is the Open-Meteo forecast API base URL.
	DefaultBaseURL = "https://api.open-meteo.com/v1"

	hourlyFields = "temperature_2m,relativehumidity_2m,windspeed_10m,precipitation,weathercode"
	dailyFields  = "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum"
)

// ClientConfig holds configuration for the Open-Meteo forecast client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo forecast API client.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo forecast client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Forecast fetches current, hourly and daily blocks for a location. The
// upstream is asked for location-local timestamps (timezone=auto) and for
// wind speeds in m/s so the payload matches the domain model's units.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*forecast.Payload, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.6f", lat))
	params.Set("longitude", fmt.Sprintf("%.6f", lon))
	params.Set("current_weather", "true")
	params.Set("hourly", hourlyFields)
	params.Set("daily", dailyFields)
	params.Set("windspeed_unit", "ms")
	params.Set("timezone", "auto")

	reqURL := c.baseURL + "/forecast?" + params.Encode()

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

	var omResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if omResp.CurrentWeather == nil {
		return nil, forecast.ErrMissingCurrent
	}

	return c.toPayload(&omResp), nil
}

// toPayload converts the Open-Meteo response to the domain model. Missing
// hourly or daily blocks become empty series, not errors.
func (c *Client) toPayload(resp *forecastResponse) *forecast.Payload {
	payload := &forecast.Payload{
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
		Current: forecast.Current{
			Temperature: resp.CurrentWeather.Temperature,
			WindSpeed:   resp.CurrentWeather.WindSpeed,
			Code:        resp.CurrentWeather.WeatherCode,
			Time:        resp.CurrentWeather.Time,
		},
		FetchedAt: time.Now(),
	}

	if resp.Hourly != nil {
		payload.Hourly = forecast.Hourly{
			Time:          resp.Hourly.Time,
			Temperature:   resp.Hourly.Temperature,
			Humidity:      resp.Hourly.Humidity,
			WindSpeed:     resp.Hourly.WindSpeed,
			Precipitation: resp.Hourly.Precipitation,
			Code:          resp.Hourly.WeatherCode,
		}
	}

	if resp.Daily != nil {
		payload.Daily = forecast.Daily{
			Time:             resp.Daily.Time,
			Code:             resp.Daily.WeatherCode,
			TemperatureMax:   resp.Daily.TemperatureMax,
			TemperatureMin:   resp.Daily.TemperatureMin,
			PrecipitationSum: resp.Daily.PrecipitationSum,
		}
	}

	return payload
}

// Open-Meteo forecast API response structures.

type forecastResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
	Hourly *struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		Humidity      []float64 `json:"relativehumidity_2m"`
		WindSpeed     []float64 `json:"windspeed_10m"`
		Precipitation []float64 `json:"precipitation"`
		WeatherCode   []int     `json:"weathercode"`
	} `json:"hourly"`
	Daily *struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weathercode"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
