package meteo

// ForecastResponse is the body of the forecast endpoint. The hourly, daily,
// and current blocks are present only when requested; the remaining fields
// describe the grid cell the forecast was computed for.
type ForecastResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Elevation            float64 `json:"elevation"`
	GenerationTimeMs     float64 `json:"generationtime_ms"`
	UTCOffsetSeconds     int     `json:"utc_offset_seconds"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`

	Hourly      *HourlyTimeSeries `json:"hourly,omitempty"`
	HourlyUnits HourlyUnits       `json:"hourly_units,omitempty"`

	Daily      *DailyTimeSeries `json:"daily,omitempty"`
	DailyUnits DailyUnits       `json:"daily_units,omitempty"`

	Current      *CurrentConditions `json:"current,omitempty"`
	CurrentUnits CurrentUnits       `json:"current_units,omitempty"`
}
