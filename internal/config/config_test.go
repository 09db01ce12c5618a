package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:           "8080",
		CORSOrigins:    []string{"*"},
		RateLimit:      20,
		DatasetPath:    "vgsales.csv",
		LogLevel:       "info",
		LogFormat:      "text",
		WeatherBaseURL: "https://api.openweathermap.org/data/2.5/weather",
		WeatherUnits:   "metric",
		WeatherTimeout: 10 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing weather key is allowed",
			mutate:  func(c *Config) { c.WeatherAPIKey = "" },
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty dataset path",
			mutate:      func(c *Config) { c.DatasetPath = " " },
			wantErr:     true,
			errorString: "dataset path cannot be empty",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "negative rate limit",
			mutate:      func(c *Config) { c.RateLimit = -1 },
			wantErr:     true,
			errorString: "invalid rate limit -1",
		},
		{
			name:        "weather URL scheme",
			mutate:      func(c *Config) { c.WeatherBaseURL = "ftp://example.com" },
			wantErr:     true,
			errorString: "invalid weather URL scheme 'ftp'",
		},
		{
			name:        "zero weather timeout",
			mutate:      func(c *Config) { c.WeatherTimeout = 0 },
			wantErr:     true,
			errorString: "invalid weather timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "invalid log format") {
		t.Errorf("error should list both problems: %v", err)
	}
}

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "VGSALES_DATASET", "CORS_ORIGINS", "RATE_LIMIT", "LOG_LEVEL", "LOG_FORMAT", "WEATHER_BASE_URL", "WEATHER_TIMEOUT"} {
		// t.Setenv restores the original value after the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatasetPath != "vgsales.csv" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.WeatherTimeout != 10*time.Second {
		t.Errorf("WeatherTimeout = %v", cfg.WeatherTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VGSALES_DATASET", "/data/vgsales.parquet")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("RATE_LIMIT", "0")
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_TIMEOUT", "3s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.DatasetPath != "/data/vgsales.parquet" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.RateLimit != 0 || cfg.WeatherAPIKey != "secret" || cfg.WeatherTimeout != 3*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
}
