package weather

import "fmt"

// Format renders a Report as the fixed multi-line console template.
// Sunrise and sunset are shown as HH:MM in UTC.
func Format(r Report) string {
	return fmt.Sprintf(
		"\n%s - %s:\n - Temperature: %.1f°C\n - Sunrise: %s\n - Sunset: %s\n",
		r.City,
		r.Condition,
		r.TemperatureC,
		r.Sunrise.UTC().Format("15:04"),
		r.Sunset.UTC().Format("15:04"),
	)
}
