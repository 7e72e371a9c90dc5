package meteo

import (
	"net/url"
	"strconv"
	"strings"
)

// TemperatureUnit selects the unit for temperature values in responses.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// WindSpeedUnit selects the unit for wind speed values in responses.
type WindSpeedUnit string

const (
	KilometersPerHour WindSpeedUnit = "kmh"
	MetersPerSecond   WindSpeedUnit = "ms"
	MilesPerHour      WindSpeedUnit = "mph"
	Knots             WindSpeedUnit = "kn"
)

// PrecipitationUnit selects the unit for precipitation values in responses.
type PrecipitationUnit string

const (
	Millimeters PrecipitationUnit = "mm"
	Inches      PrecipitationUnit = "inch"
)

// TimeFormat selects how timestamps are rendered in responses.
type TimeFormat string

const (
	ISO8601  TimeFormat = "iso8601"
	UnixTime TimeFormat = "unixtime"
)

// CellSelection selects how Open-Meteo picks the grid cell for a coordinate.
type CellSelection string

const (
	CellLand    CellSelection = "land"
	CellSea     CellSelection = "sea"
	CellNearest CellSelection = "nearest"
)

// ForecastOptions are the optional parameters of the forecast endpoint.
// Zero-valued fields are omitted from the request entirely.
//
// The variable lists distinguish nil from empty: a nil slice omits the
// parameter, a non-nil empty slice sends it with an explicit empty value.
// Order is preserved as given and duplicates are not removed.
type ForecastOptions struct {
	Hourly  []HourlyVariable
	Daily   []DailyVariable
	Current []CurrentVariable

	TemperatureUnit   TemperatureUnit
	WindSpeedUnit     WindSpeedUnit
	PrecipitationUnit PrecipitationUnit
	TimeFormat        TimeFormat
	CellSelection     CellSelection

	// Timezone is an IANA name, "auto", or empty for UTC.
	Timezone string

	PastDays     *int
	ForecastDays *int

	// StartDate and EndDate bound the forecast period, formatted yyyy-mm-dd.
	StartDate string
	EndDate   string

	// Elevation overrides the grid-cell elevation used for downscaling.
	Elevation *float64
}

// joinTokens serializes an ordered variable list into the comma-joined form
// used by request parameters.
func joinTokens[V interface{ Token() string }](vars []V) string {
	tokens := make([]string, len(vars))
	for i, v := range vars {
		tokens[i] = v.Token()
	}
	return strings.Join(tokens, ",")
}

// Values renders the options as query parameters. A nil receiver yields no
// parameters.
func (o *ForecastOptions) Values() url.Values {
	vals := url.Values{}
	if o == nil {
		return vals
	}

	if o.Hourly != nil {
		vals.Set("hourly", joinTokens(o.Hourly))
	}
	if o.Daily != nil {
		vals.Set("daily", joinTokens(o.Daily))
	}
	if o.Current != nil {
		vals.Set("current", joinTokens(o.Current))
	}

	if o.TemperatureUnit != "" {
		vals.Set("temperature_unit", string(o.TemperatureUnit))
	}
	if o.WindSpeedUnit != "" {
		vals.Set("wind_speed_unit", string(o.WindSpeedUnit))
	}
	if o.PrecipitationUnit != "" {
		vals.Set("precipitation_unit", string(o.PrecipitationUnit))
	}
	if o.TimeFormat != "" {
		vals.Set("timeformat", string(o.TimeFormat))
	}
	if o.CellSelection != "" {
		vals.Set("cell_selection", string(o.CellSelection))
	}

	if o.Timezone != "" {
		vals.Set("timezone", o.Timezone)
	}
	if o.PastDays != nil {
		vals.Set("past_days", strconv.Itoa(*o.PastDays))
	}
	if o.ForecastDays != nil {
		vals.Set("forecast_days", strconv.Itoa(*o.ForecastDays))
	}
	if o.StartDate != "" {
		vals.Set("start_date", o.StartDate)
	}
	if o.EndDate != "" {
		vals.Set("end_date", o.EndDate)
	}
	if o.Elevation != nil {
		vals.Set("elevation", strconv.FormatFloat(*o.Elevation, 'f', -1, 64))
	}

	return vals
}

// GeocodeOptions are the optional parameters of the geocoding search endpoint.
type GeocodeOptions struct {
	// Count limits the number of results; the API default is 10.
	Count       *int
	Language    string
	CountryCode string
}

// Values renders the options as query parameters. A nil receiver yields no
// parameters.
func (o *GeocodeOptions) Values() url.Values {
	vals := url.Values{}
	if o == nil {
		return vals
	}
	if o.Count != nil {
		vals.Set("count", strconv.Itoa(*o.Count))
	}
	if o.Language != "" {
		vals.Set("language", o.Language)
	}
	if o.CountryCode != "" {
		vals.Set("countryCode", o.CountryCode)
	}
	return vals
}
