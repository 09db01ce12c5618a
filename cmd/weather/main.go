package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"vgdash/internal/config"
	"vgdash/internal/log"
	"vgdash/internal/weather"
)

var (
	cityFlag = flag.String("city", "Moscow", "City label for the output")
	latFlag  = flag.Float64("lat", 55.75222, "Latitude")
	lonFlag  = flag.Float64("lon", 37.61556, "Longitude")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logCfg := log.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	logCfg.Component = log.ComponentWeather
	logCfg.Output = os.Stderr
	logger := log.New(logCfg)

	client := weather.NewClient(weather.Config{
		BaseURL: cfg.WeatherBaseURL,
		APIKey:  cfg.WeatherAPIKey,
		Units:   cfg.WeatherUnits,
		Timeout: cfg.WeatherTimeout,
	}, weather.WithLogger(logger.Logger))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.WeatherTimeout)
	defer cancel()

	data, err := client.Current(ctx, *latFlag, *lonFlag)
	if err != nil && data == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Weather in city %s:\n", *cityFlag)
	out, _ := json.MarshalIndent(data, "", "  ")
	fmt.Println(string(out))

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
