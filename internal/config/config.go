package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

// AppConfig holds everything the lookup chain needs. It is populated once
// at startup and never modified.
type AppConfig struct {
	// OWMToken is the OpenWeatherMap API credential. An empty token is
	// allowed locally; the weather endpoint rejects it with an auth error.
	OWMToken string `envconfig:"OWM_TOKEN"`

	// Outbound endpoints. Overridable mainly for tests.
	IPLookupURL  string `envconfig:"IP_LOOKUP_URL" default:"https://api64.ipify.org" validate:"required,url"`
	GeoLookupURL string `envconfig:"GEO_LOOKUP_URL" default:"https://ipapi.co" validate:"required,url"`
	WeatherURL   string `envconfig:"WEATHER_URL" default:"https://api.openweathermap.org/data/2.5/weather" validate:"required,url"`

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
