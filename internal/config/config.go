package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"vgdash/internal/log"
)

type Config struct {
	// HTTP Server
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimit   float64  `env:"RATE_LIMIT" envDefault:"20"`

	// Dataset
	DatasetPath string `env:"VGSALES_DATASET" envDefault:"vgsales.csv"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Weather
	WeatherAPIKey  string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL string        `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	WeatherUnits   string        `env:"WEATHER_UNITS" envDefault:"metric"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
}

// Load reads a .env file when one is present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
// A missing weather API key is not an error: the weather service rejects the
// request and the caller sees that failure.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DatasetPath) == "" {
		errors = append(errors, "dataset path cannot be empty")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if c.RateLimit < 0 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %v: must not be negative", c.RateLimit))
	}

	if u, err := url.Parse(c.WeatherBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid weather URL '%s': %v", c.WeatherBaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid weather URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}
	if c.WeatherTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid weather timeout %v: must be positive", c.WeatherTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
