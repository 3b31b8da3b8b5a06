package location

import "errors"

// ErrLookup is returned when the user's coordinates cannot be determined,
// whether the IP lookup or the geolocation call is at fault.
var ErrLookup = errors.New("coordinates lookup failed")

// Coordinates is a point on earth. Produced by the geolocation lookup,
// consumed by the weather client; never mutated after construction.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
