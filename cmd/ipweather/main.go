package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"ipweather/internal/config"
	"ipweather/internal/location"
	"ipweather/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	out, err := run(context.Background(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrLookup):
			log.Printf("coordinates lookup failed: %v", err)
		case errors.Is(err, weather.ErrAPI):
			log.Printf("weather lookup failed: %v", err)
		default:
			log.Printf("error: %v", err)
		}
		os.Exit(1)
	}

	fmt.Println(out)
}

// run executes the lookup chain: public IP, then coordinates, then current
// weather, then the rendered report. The first failing stage aborts the rest.
func run(ctx context.Context, cfg *config.AppConfig) (string, error) {
	// Shared HTTP client for all outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	resolver := location.NewResolver(httpClient, cfg.IPLookupURL, cfg.GeoLookupURL)
	owm := weather.NewClient(httpClient, cfg.WeatherURL, cfg.OWMToken)

	coords, err := resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}

	report, err := owm.Current(ctx, coords)
	if err != nil {
		return "", err
	}

	return weather.Format(report), nil
}
