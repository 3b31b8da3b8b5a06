package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OWM_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.IPLookupURL != "https://api64.ipify.org" {
		t.Errorf("unexpected IP lookup URL: %q", cfg.IPLookupURL)
	}
	if cfg.GeoLookupURL != "https://ipapi.co" {
		t.Errorf("unexpected geolocation URL: %q", cfg.GeoLookupURL)
	}
	if cfg.WeatherURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Errorf("unexpected weather URL: %q", cfg.WeatherURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTPTimeout)
	}

	// An unset token is not a local error; the weather endpoint rejects it.
	if cfg.OWMToken != "" {
		t.Errorf("expected empty token, got %q", cfg.OWMToken)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OWM_TOKEN", "secret")
	t.Setenv("WEATHER_URL", "http://localhost:9090/weather")
	t.Setenv("HTTP_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OWMToken != "secret" {
		t.Errorf("expected token secret, got %q", cfg.OWMToken)
	}
	if cfg.WeatherURL != "http://localhost:9090/weather" {
		t.Errorf("unexpected weather URL: %q", cfg.WeatherURL)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsInvalidURL(t *testing.T) {
	t.Setenv("IP_LOOKUP_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid endpoint URL, got nil")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid timeout, got nil")
	}
}
