// Package openmeteo implements the airdata.Provider interface against the
// Open-Meteo public APIs (geocoding, forecast and air quality endpoints).
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/provider/resilience"
)

const (
	// ProviderName identifies this data provider.
	ProviderName = "open-meteo"

	// DefaultGeocodingURL is the Open-Meteo geocoding API base URL.
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1"

	// DefaultForecastURL is the Open-Meteo weather forecast API base URL.
	DefaultForecastURL = "https://api.open-meteo.com/v1"

	// DefaultAirQualityURL is the Open-Meteo air quality API base URL.
	DefaultAirQualityURL = "https://air-quality-api.open-meteo.com/v1"
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// GeocodingURL overrides the geocoding API base URL (optional).
	GeocodingURL string

	// ForecastURL overrides the forecast API base URL (optional).
	ForecastURL string

	// AirQualityURL overrides the air quality API base URL (optional).
	AirQualityURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo API client. No API key is required.
type Client struct {
	geocodingURL  string
	forecastURL   string
	airQualityURL string
	httpClient    *resilience.Client
	logger        zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	geocodingURL := cfg.GeocodingURL
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}

	forecastURL := cfg.ForecastURL
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}

	airQualityURL := cfg.AirQualityURL
	if airQualityURL == "" {
		airQualityURL = DefaultAirQualityURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		geocodingURL:  geocodingURL,
		forecastURL:   forecastURL,
		airQualityURL: airQualityURL,
		httpClient:    httpClient,
		logger:        cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Geocode resolves a city name to coordinates. Returns (nil, nil) when the
// geocoder has no match for the name.
func (c *Client) Geocode(ctx context.Context, city string) (*airdata.Location, error) {
	reqURL := fmt.Sprintf("%s/search?name=%s&count=1", c.geocodingURL, url.QueryEscape(city))

	var geoResp geocodingResponse
	if err := c.getJSON(ctx, reqURL, &geoResp); err != nil {
		return nil, err
	}

	if len(geoResp.Results) == 0 {
		return nil, nil
	}

	r := geoResp.Results[0]
	return &airdata.Location{Lat: r.Latitude, Lon: r.Longitude, Name: r.Name}, nil
}

// FetchWeather fetches current weather for a location.
func (c *Client) FetchWeather(ctx context.Context, loc airdata.Location) (*airdata.WeatherReading, error) {
	reqURL := fmt.Sprintf(
		"%s/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,wind_speed_10m",
		c.forecastURL, loc.Lat, loc.Lon)

	var wResp forecastResponse
	if err := c.getJSON(ctx, reqURL, &wResp); err != nil {
		return nil, err
	}

	return &airdata.WeatherReading{
		Temp:      wResp.Current.Temperature,
		WindSpeed: wResp.Current.WindSpeed,
		Humidity:  wResp.Current.Humidity,
	}, nil
}

// FetchPollutants fetches the latest particulate readings for a location.
func (c *Client) FetchPollutants(ctx context.Context, loc airdata.Location) (*airdata.PollutantReading, error) {
	reqURL := fmt.Sprintf(
		"%s/air-quality?latitude=%.4f&longitude=%.4f&current=pm2_5,pm10",
		c.airQualityURL, loc.Lat, loc.Lon)

	var aqResp airQualityResponse
	if err := c.getJSON(ctx, reqURL, &aqResp); err != nil {
		return nil, err
	}

	return &airdata.PollutantReading{
		PM25: aqResp.Current.PM25,
		PM10: aqResp.Current.PM10,
	}, nil
}

// getJSON executes a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Open-Meteo API response structures. Pointer fields distinguish missing
// values from zero readings.

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		Humidity    *float64 `json:"relative_humidity_2m"`
		WindSpeed   *float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

type airQualityResponse struct {
	Current struct {
		PM25 *float64 `json:"pm2_5"`
		PM10 *float64 `json:"pm10"`
	} `json:"current"`
}
