// Package weather fetches current conditions from the OpenWeatherMap
// "current weather" endpoint. One GET per call; no retries, no caching and no
// schema: the decoded JSON object is handed back as-is.
package weather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// APIError is returned for a non-2xx response. The decoded body, when there
// is one, is returned alongside it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather api: status %d: %s", e.StatusCode, e.Message)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	APIKey  string
	Units   string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the current weather at the given coordinates.
//
// An empty API key is still sent; the service answers 401 and the caller
// receives that as an *APIError together with the response body.
func (c *Client) Current(ctx context.Context, lat, lon float64) (map[string]any, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	if c.units != "" {
		q.Set("units", c.units)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get weather: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Weather request completed",
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var data map[string]any
	decodeErr := json.Unmarshal(body, &data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if msg, ok := data["message"].(string); ok {
			apiErr.Message = msg
		}
		return data, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return data, nil
}
