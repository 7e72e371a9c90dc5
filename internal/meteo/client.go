package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
)

const (
	forecastHost  = "api.open-meteo.com"
	geocodingHost = "geocoding-api.open-meteo.com"

	defaultUserAgent = "fjordgard/1.0"
)

// ClientConfig configures a Client. The zero value targets the public
// Open-Meteo API with a default HTTP client.
type ClientConfig struct {
	// APIKey enables the commercial API: it is sent as the apikey parameter
	// and the default hosts gain the "customer-" prefix.
	APIKey string

	// ForecastURL and GeocodingURL override the endpoint URLs, mainly for
	// tests. They replace scheme, host, and path up to the route.
	ForecastURL  string
	GeocodingURL string

	UserAgent  string
	HTTPClient *http.Client
	Backoff    BackoffConfig
}

// Client calls the Open-Meteo forecasting and geocoding APIs. It is safe for
// concurrent use.
type Client struct {
	apiKey       string
	forecastURL  string
	geocodingURL string
	userAgent    string
	httpClient   *http.Client
	backoff      BackoffConfig
	circuit      *gobreaker.CircuitBreaker
}

// NewClient creates a Client from cfg, filling in defaults for anything unset.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		apiKey:       cfg.APIKey,
		forecastURL:  cfg.ForecastURL,
		geocodingURL: cfg.GeocodingURL,
		userAgent:    cfg.UserAgent,
		httpClient:   cfg.HTTPClient,
		backoff:      cfg.Backoff,
	}

	prefix := ""
	if cfg.APIKey != "" {
		prefix = "customer-"
	}
	if c.forecastURL == "" {
		c.forecastURL = fmt.Sprintf("https://%s%s/v1/forecast", prefix, forecastHost)
	}
	if c.geocodingURL == "" {
		c.geocodingURL = fmt.Sprintf("https://%s%s/v1/search", prefix, geocodingHost)
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.backoff.MaxRetries == 0 && c.backoff.InitialInterval == 0 {
		c.backoff = BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		}
	}

	c.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return c
}

// apiEnvelope is the error shape Open-Meteo returns on bad requests.
type apiEnvelope struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (c *Client) get(ctx context.Context, baseURL string, vals url.Values, out any) error {
	if c.apiKey != "" {
		vals.Set("apikey", c.apiKey)
	}

	u := baseURL
	if encoded := vals.Encode(); encoded != "" {
		u = baseURL + "?" + encoded
	}

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpClient, c.backoff, c.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error {
		return &APIError{StatusCode: resp.StatusCode, Reason: envelope.Reason}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode}
	}

	return json.Unmarshal(body, out)
}

// Forecast fetches a forecast for the given coordinate.
// Endpoint: /v1/forecast.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64, opt *ForecastOptions) (*ForecastResponse, error) {
	vals := opt.Values()
	vals.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	vals.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))

	var resp ForecastResponse
	if err := c.get(ctx, c.forecastURL, vals, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Geocode searches for places by name.
// Endpoint: /v1/search.
func (c *Client) Geocode(ctx context.Context, name string, opt *GeocodeOptions) ([]GeocodeResult, error) {
	vals := opt.Values()
	vals.Set("name", name)

	var resp geocodeResponse
	if err := c.get(ctx, c.geocodingURL, vals, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
