package weather

import (
	"fmt"
	"time"
)

// Condition is a coarse classification of WMO weather codes, for callers that
// only need an icon-level summary.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionFog     Condition = "fog"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
)

// Location is a place we track weather for.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this location in stores.
// Named locations key by name; unnamed ones by their coordinate.
func (l Location) Key() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}

// Snapshot is the normalized view of current conditions at a location.
type Snapshot struct {
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"` // always UTC

	Temperature         float64 `json:"temperatureC"`
	ApparentTemperature float64 `json:"apparentTemperatureC"`
	Humidity            float64 `json:"humidityPercent"`
	WindSpeed           float64 `json:"windSpeed"`
	WindDirection       float64 `json:"windDirectionDeg"`
	Pressure            float64 `json:"pressureHpa"`
	Precipitation       float64 `json:"precipMm"`
	CloudCover          float64 `json:"cloudCoverPercent"`

	WeatherCode int       `json:"weatherCode"`
	Condition   Condition `json:"condition"`
	IsDay       bool      `json:"isDay"`
}

// mapWeatherCode classifies a WMO weather interpretation code.
func mapWeatherCode(code int) Condition {
	switch {
	case code == 0:
		return ConditionClear
	case code >= 1 && code <= 3:
		return ConditionCloudy
	case code == 45 || code == 48:
		return ConditionFog
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnow
	case code >= 95:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}
