package domain

import "time"

// UnknownPlace is displayed when an event has no place description.
const UnknownPlace = "Unknown location"

// SeismicEvent is one observed earthquake from the seismic feed.
type SeismicEvent struct {
	ID               string  `json:"id"`
	Magnitude        float64 `json:"magnitude"`
	Place            string  `json:"place,omitempty"` // empty when the feed omits it
	OccurredAtMillis int64   `json:"time"`
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	DepthKm          float64 `json:"depth_km"`
	DetailURL        string  `json:"url,omitempty"`
	Title            string  `json:"title,omitempty"`
	EventType        string  `json:"type,omitempty"`
}

// OccurredAt converts the epoch-millisecond timestamp to a time.Time.
func (e SeismicEvent) OccurredAt() time.Time {
	return time.UnixMilli(e.OccurredAtMillis)
}

// DisplayPlace returns the place description, or UnknownPlace when absent.
func (e SeismicEvent) DisplayPlace() string {
	if e.Place == "" {
		return UnknownPlace
	}
	return e.Place
}

// Severity buckets the magnitude for visual styling.
func (e SeismicEvent) Severity() Severity {
	return SeverityFor(e.Magnitude)
}

// Severity is a display class derived from magnitude.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SeverityFor maps a magnitude to its severity class.
func SeverityFor(magnitude float64) Severity {
	switch {
	case magnitude >= 5:
		return SeverityHigh
	case magnitude >= 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// CurrentWeather is a current-conditions snapshot for one coordinate pair.
type CurrentWeather struct {
	TemperatureCelsius float64 `json:"temperature"`
	WindSpeedKmh       float64 `json:"windspeed"`
	WeatherCode        int     `json:"weathercode"`
}

// Label returns the human-readable condition for the weather code.
func (w CurrentWeather) Label() string {
	return WeatherCodeLabel(w.WeatherCode)
}
