package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Resolver determines the caller's approximate coordinates from its public
// IP address using two chained lookups: an IP echo service followed by an
// IP-geolocation service.
type Resolver struct {
	client       *http.Client
	ipLookupURL  string
	geoLookupURL string
}

func NewResolver(client *http.Client, ipLookupURL, geoLookupURL string) *Resolver {
	return &Resolver{
		client:       client,
		ipLookupURL:  ipLookupURL,
		geoLookupURL: geoLookupURL,
	}
}

// Resolve runs the full chain: public IP first, then its coordinates.
func (r *Resolver) Resolve(ctx context.Context) (Coordinates, error) {
	ip, err := r.ResolveIP(ctx)
	if err != nil {
		return Coordinates{}, err
	}
	return r.ResolveCoordinates(ctx, ip)
}

// ResolveIP fetches the caller's public IP address.
func (r *Resolver) ResolveIP(ctx context.Context) (string, error) {
	var payload struct {
		IP *string `json:"ip"`
	}

	if err := r.getJSON(ctx, r.ipLookupURL+"?format=json", &payload); err != nil {
		return "", err
	}

	if payload.IP == nil {
		return "", fmt.Errorf("%w: response has no ip field", ErrLookup)
	}
	return *payload.IP, nil
}

// ResolveCoordinates geolocates the given IP address.
// Pointer payload fields distinguish an absent key from a zero coordinate;
// a missing latitude or longitude fails loudly instead of defaulting.
func (r *Resolver) ResolveCoordinates(ctx context.Context, ip string) (Coordinates, error) {
	var payload struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	u := fmt.Sprintf("%s/%s/json/", r.geoLookupURL, url.PathEscape(ip))
	if err := r.getJSON(ctx, u, &payload); err != nil {
		return Coordinates{}, err
	}

	if payload.Latitude == nil || payload.Longitude == nil {
		return Coordinates{}, fmt.Errorf("%w: response has no latitude/longitude", ErrLookup)
	}

	return Coordinates{
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
	}, nil
}

// getJSON performs a single GET and decodes the JSON body into out.
// Transport failures, non-2xx responses, and malformed bodies all collapse
// into ErrLookup; nothing is retried.
func (r *Resolver) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLookup, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrLookup, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrLookup, err)
	}
	return nil
}
