package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlejandroE25/weatherman/internal/config"
)

// dailyFields are the per-day series requested from the API
var dailyFields = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"sunrise",
	"sunset",
	"precipitation_sum",
	"windspeed_10m_max",
}

// Client fetches the weekly forecast from the open-meteo API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	params     QueryParams
}

// NewClient creates a client for the location and units in cfg
func NewClient(cfg *config.Config) *Client {
	return NewClientWithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg)
}

// NewClientWithHTTPClient creates a client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client, cfg *config.Config) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		params: QueryParams{
			Latitude:          cfg.Latitude,
			Longitude:         cfg.Longitude,
			Timezone:          cfg.Timezone,
			TemperatureUnit:   cfg.Units.Temperature,
			WindSpeedUnit:     cfg.Units.WindSpeed,
			PrecipitationUnit: cfg.Units.Precipitation,
		},
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Fetch performs the single forecast request and builds the WeeklyForecast
func (c *Client) Fetch(ctx context.Context) (*WeeklyForecast, error) {
	resp, err := c.getForecast(ctx)
	if err != nil {
		return nil, err
	}
	return NewWeeklyForecast(resp)
}

// getForecast performs the HTTP request and decodes the raw response
func (c *Client) getForecast(ctx context.Context) (*APIResponse, error) {
	reqURL, err := c.buildURL()
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Operation: "read body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var forecast APIResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON", Err: err}
	}

	log.Printf("forecast response: %d bytes in %s", len(body), time.Since(start).Round(time.Millisecond))

	return &forecast, nil
}

// buildURL constructs the API URL with query parameters
func (c *Client) buildURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("latitude", FormatNumber(c.params.Latitude))
	query.Set("longitude", FormatNumber(c.params.Longitude))
	query.Set("daily", strings.Join(dailyFields, ","))
	query.Set("temperature_unit", c.params.TemperatureUnit)
	query.Set("windspeed_unit", c.params.WindSpeedUnit)
	query.Set("precipitation_unit", c.params.PrecipitationUnit)
	query.Set("timezone", c.params.Timezone)
	query.Set("forecast_days", fmt.Sprint(DaysInForecast))

	u.RawQuery = query.Encode()
	return u.String(), nil
}
