package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ipweather/internal/location"
)

// Client fetches current weather from the OpenWeatherMap current-weather
// endpoint. Results are metric and use the "us" language option.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a Client. The API key is sent as-is; an empty key is
// rejected by the endpoint, not locally.
func NewClient(client *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Current returns the weather at the given coordinates. Transport failures,
// non-2xx responses, malformed bodies, and missing fields all wrap ErrAPI.
func (c *Client) Current(ctx context.Context, coords location.Coordinates) (Report, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	values.Set("lang", "us")
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrAPI, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Report{}, fmt.Errorf("%w: unexpected status code %d", ErrAPI, resp.StatusCode)
	}

	var payload owmPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrAPI, err)
	}

	return parseReport(payload)
}

// owmPayload mirrors the subset of the OpenWeatherMap response we consume.
// Pointer fields distinguish absent keys from zero values.
type owmPayload struct {
	Weather []struct {
		ID *int `json:"id"`
	} `json:"weather"`
	Name *string `json:"name"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Sys struct {
		Sunrise *int64 `json:"sunrise"`
		Sunset  *int64 `json:"sunset"`
	} `json:"sys"`
}

func parseReport(p owmPayload) (Report, error) {
	if len(p.Weather) == 0 || p.Weather[0].ID == nil {
		return Report{}, fmt.Errorf("%w: response has no condition code", ErrAPI)
	}
	cond, err := conditionFromCode(*p.Weather[0].ID)
	if err != nil {
		return Report{}, err
	}

	if p.Name == nil {
		return Report{}, fmt.Errorf("%w: response has no city name", ErrAPI)
	}
	if p.Main.Temp == nil {
		return Report{}, fmt.Errorf("%w: response has no temperature", ErrAPI)
	}
	if p.Sys.Sunrise == nil || p.Sys.Sunset == nil {
		return Report{}, fmt.Errorf("%w: response has no sunrise/sunset", ErrAPI)
	}

	return Report{
		Condition:    cond,
		City:         *p.Name,
		TemperatureC: *p.Main.Temp,
		Sunrise:      time.Unix(*p.Sys.Sunrise, 0).UTC(),
		Sunset:       time.Unix(*p.Sys.Sunset, 0).UTC(),
	}, nil
}
