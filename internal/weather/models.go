package weather

import (
	"errors"
	"time"
)

// ErrAPI is returned when current weather cannot be retrieved or the
// provider response cannot be understood.
var ErrAPI = errors.New("weather api call failed")

// Condition is a normalized weather condition. The string value is the
// human-readable label used in the rendered report.
type Condition string

const (
	ConditionThunderstorm Condition = "Thundershtorm" // sic, kept for output compatibility
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionClear        Condition = "Clear"
	ConditionFog          Condition = "Fog"
	ConditionClouds       Condition = "Clouds"
)

// Report holds the current weather for a location. Produced once per run
// and consumed only by the formatter.
type Report struct {
	Condition    Condition
	City         string
	TemperatureC float64
	Sunrise      time.Time // always UTC
	Sunset       time.Time // always UTC
}
