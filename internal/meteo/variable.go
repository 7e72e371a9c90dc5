// Package meteo is a client for the Open-Meteo forecasting and geocoding APIs.
//
// The package models the Open-Meteo variable vocabulary as typed catalogs, one
// per response domain (hourly, daily, current conditions). Variables encode to
// their wire token when building query parameters and response object keys are
// decoded back into catalog members when parsing time-series payloads.
package meteo

import (
	"fmt"
	"strconv"
	"strings"
)

// PressureFamily identifies a group of hourly variables measured on an
// atmospheric pressure level. The value is the wire-token prefix; the full
// token is the prefix followed by the level and the literal "hPa", e.g.
// "temperature_850hPa".
type PressureFamily string

const (
	FamilyTemperature        PressureFamily = "temperature_"
	FamilyRelativeHumidity   PressureFamily = "relative_humidity_"
	FamilyDewPoint           PressureFamily = "dew_point_"
	FamilyCloudCover         PressureFamily = "cloud_cover_"
	FamilyWindSpeed          PressureFamily = "wind_speed_"
	FamilyWindDirection      PressureFamily = "wind_direction_"
	FamilyGeopotentialHeight PressureFamily = "geopotential_height_"
)

var pressureFamilies = map[PressureFamily]struct{}{
	FamilyTemperature:        {},
	FamilyRelativeHumidity:   {},
	FamilyDewPoint:           {},
	FamilyCloudCover:         {},
	FamilyWindSpeed:          {},
	FamilyWindDirection:      {},
	FamilyGeopotentialHeight: {},
}

// HourlyVariable is a member of the hourly catalog: either one of the static
// variables declared below, or a pressure-level variable built with
// OnPressureLevel. The zero value is not a valid variable.
//
// HourlyVariable is a comparable value type and can be used as a map key;
// two variables are equal exactly when they encode to the same token.
type HourlyVariable struct {
	name   string
	family PressureFamily
	level  uint32
}

// OnPressureLevel returns the variable for family measured at the given
// pressure level in hectopascals. The level is not checked against the model
// levels Open-Meteo actually publishes; the service accepts arbitrary levels.
func OnPressureLevel(family PressureFamily, level uint32) HourlyVariable {
	return HourlyVariable{family: family, level: level}
}

// PressureLevel reports the family and level of a pressure-level variable.
// ok is false for static members.
func (v HourlyVariable) PressureLevel() (family PressureFamily, level uint32, ok bool) {
	if v.family == "" {
		return "", 0, false
	}
	return v.family, v.level, true
}

// Token returns the wire-format name of the variable.
func (v HourlyVariable) Token() string {
	if v.family != "" {
		return string(v.family) + strconv.FormatUint(uint64(v.level), 10) + "hPa"
	}
	return v.name
}

func (v HourlyVariable) String() string { return v.Token() }

// MarshalText encodes the variable as its wire token, so it can key JSON
// objects.
func (v HourlyVariable) MarshalText() ([]byte, error) {
	return []byte(v.Token()), nil
}

// UnmarshalText decodes a wire token; see ParseHourlyVariable.
func (v *HourlyVariable) UnmarshalText(text []byte) error {
	parsed, err := ParseHourlyVariable(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Static members of the hourly catalog.
var (
	HourlyTemperature2m            = HourlyVariable{name: "temperature_2m"}
	HourlyTemperature80m           = HourlyVariable{name: "temperature_80m"}
	HourlyTemperature120m          = HourlyVariable{name: "temperature_120m"}
	HourlyTemperature180m          = HourlyVariable{name: "temperature_180m"}
	HourlyRelativeHumidity2m       = HourlyVariable{name: "relative_humidity_2m"}
	HourlyDewPoint2m               = HourlyVariable{name: "dew_point_2m"}
	HourlyApparentTemperature      = HourlyVariable{name: "apparent_temperature"}
	HourlyPrecipitationProbability = HourlyVariable{name: "precipitation_probability"}
	HourlyPrecipitation            = HourlyVariable{name: "precipitation"}
	HourlyRain                     = HourlyVariable{name: "rain"}
	HourlyShowers                  = HourlyVariable{name: "showers"}
	HourlySnowfall                 = HourlyVariable{name: "snowfall"}
	HourlySnowDepth                = HourlyVariable{name: "snow_depth"}
	HourlyWeatherCode              = HourlyVariable{name: "weather_code"}
	HourlyPressureMSL              = HourlyVariable{name: "pressure_msl"}
	HourlySurfacePressure          = HourlyVariable{name: "surface_pressure"}
	HourlyCloudCover               = HourlyVariable{name: "cloud_cover"}
	HourlyCloudCoverLow            = HourlyVariable{name: "cloud_cover_low"}
	HourlyCloudCoverMid            = HourlyVariable{name: "cloud_cover_mid"}
	HourlyCloudCoverHigh           = HourlyVariable{name: "cloud_cover_high"}
	HourlyVisibility               = HourlyVariable{name: "visibility"}
	HourlyEvapotranspiration       = HourlyVariable{name: "evapotranspiration"}
	HourlyET0FAOEvapotranspiration = HourlyVariable{name: "et0_fao_evapotranspiration"}
	HourlyVapourPressureDeficit    = HourlyVariable{name: "vapour_pressure_deficit"}

	// Fixed-height wind variables. These are static tokens and are never
	// produced through the pressure-level template.
	HourlyWindSpeed10m      = HourlyVariable{name: "wind_speed_10m"}
	HourlyWindSpeed80m      = HourlyVariable{name: "wind_speed_80m"}
	HourlyWindSpeed120m     = HourlyVariable{name: "wind_speed_120m"}
	HourlyWindSpeed180m     = HourlyVariable{name: "wind_speed_180m"}
	HourlyWindDirection10m  = HourlyVariable{name: "wind_direction_10m"}
	HourlyWindDirection80m  = HourlyVariable{name: "wind_direction_80m"}
	HourlyWindDirection120m = HourlyVariable{name: "wind_direction_120m"}
	HourlyWindDirection180m = HourlyVariable{name: "wind_direction_180m"}
	HourlyWindGusts10m      = HourlyVariable{name: "wind_gusts_10m"}

	HourlySoilTemperature0cm     = HourlyVariable{name: "soil_temperature_0cm"}
	HourlySoilTemperature6cm     = HourlyVariable{name: "soil_temperature_6cm"}
	HourlySoilTemperature18cm    = HourlyVariable{name: "soil_temperature_18cm"}
	HourlySoilTemperature54cm    = HourlyVariable{name: "soil_temperature_54cm"}
	HourlySoilMoisture0To1cm     = HourlyVariable{name: "soil_moisture_0_to_1cm"}
	HourlySoilMoisture1To3cm     = HourlyVariable{name: "soil_moisture_1_to_3cm"}
	HourlySoilMoisture3To9cm     = HourlyVariable{name: "soil_moisture_3_to_9cm"}
	HourlySoilMoisture9To27cm    = HourlyVariable{name: "soil_moisture_9_to_27cm"}
	HourlySoilMoisture27To81cm   = HourlyVariable{name: "soil_moisture_27_to_81cm"}
	HourlyUVIndex                = HourlyVariable{name: "uv_index"}
	HourlyUVIndexClearSky        = HourlyVariable{name: "uv_index_clear_sky"}
	HourlyIsDay                  = HourlyVariable{name: "is_day"}
	HourlySunshineDuration       = HourlyVariable{name: "sunshine_duration"}
	HourlyCAPE                   = HourlyVariable{name: "cape"}
	HourlyFreezingLevelHeight    = HourlyVariable{name: "freezing_level_height"}
	HourlyShortwaveRadiation     = HourlyVariable{name: "shortwave_radiation"}
	HourlyDirectRadiation        = HourlyVariable{name: "direct_radiation"}
	HourlyDiffuseRadiation       = HourlyVariable{name: "diffuse_radiation"}
	HourlyDirectNormalIrradiance = HourlyVariable{name: "direct_normal_irradiance"}
	HourlyTerrestrialRadiation   = HourlyVariable{name: "terrestrial_radiation"}

	// HourlyTime keys the time axis in hourly units maps. It is not a
	// requestable variable and never carries numeric samples.
	HourlyTime = HourlyVariable{name: "time"}
)

// DailyVariable is a member of the daily catalog. Its value is the wire token.
type DailyVariable string

const (
	DailyWeatherCode                 DailyVariable = "weather_code"
	DailyTemperature2mMax            DailyVariable = "temperature_2m_max"
	DailyTemperature2mMin            DailyVariable = "temperature_2m_min"
	DailyApparentTemperatureMax      DailyVariable = "apparent_temperature_max"
	DailyApparentTemperatureMin      DailyVariable = "apparent_temperature_min"
	DailySunrise                     DailyVariable = "sunrise"
	DailySunset                      DailyVariable = "sunset"
	DailyDaylightDuration            DailyVariable = "daylight_duration"
	DailySunshineDuration            DailyVariable = "sunshine_duration"
	DailyUVIndexMax                  DailyVariable = "uv_index_max"
	DailyUVIndexClearSkyMax          DailyVariable = "uv_index_clear_sky_max"
	DailyPrecipitationSum            DailyVariable = "precipitation_sum"
	DailyRainSum                     DailyVariable = "rain_sum"
	DailyShowersSum                  DailyVariable = "showers_sum"
	DailySnowfallSum                 DailyVariable = "snowfall_sum"
	DailyPrecipitationHours          DailyVariable = "precipitation_hours"
	DailyPrecipitationProbabilityMax DailyVariable = "precipitation_probability_max"
	DailyWindSpeed10mMax             DailyVariable = "wind_speed_10m_max"
	DailyWindGusts10mMax             DailyVariable = "wind_gusts_10m_max"
	DailyWindDirection10mDominant    DailyVariable = "wind_direction_10m_dominant"
	DailyShortwaveRadiationSum       DailyVariable = "shortwave_radiation_sum"
	DailyET0FAOEvapotranspiration    DailyVariable = "et0_fao_evapotranspiration"

	// DailyTime keys the time axis in daily units maps; units lookups only.
	DailyTime DailyVariable = "time"
)

// Token returns the wire-format name of the variable.
func (v DailyVariable) Token() string { return string(v) }

// CurrentVariable is a member of the current-conditions catalog. Its value is
// the wire token.
type CurrentVariable string

const (
	CurrentTemperature2m       CurrentVariable = "temperature_2m"
	CurrentRelativeHumidity2m  CurrentVariable = "relative_humidity_2m"
	CurrentApparentTemperature CurrentVariable = "apparent_temperature"
	CurrentIsDay               CurrentVariable = "is_day"
	CurrentPrecipitation       CurrentVariable = "precipitation"
	CurrentRain                CurrentVariable = "rain"
	CurrentShowers             CurrentVariable = "showers"
	CurrentSnowfall            CurrentVariable = "snowfall"
	CurrentWeatherCode         CurrentVariable = "weather_code"
	CurrentCloudCover          CurrentVariable = "cloud_cover"
	CurrentPressureMSL         CurrentVariable = "pressure_msl"
	CurrentSurfacePressure     CurrentVariable = "surface_pressure"
	CurrentWindSpeed10m        CurrentVariable = "wind_speed_10m"
	CurrentWindDirection10m    CurrentVariable = "wind_direction_10m"
	CurrentWindGusts10m        CurrentVariable = "wind_gusts_10m"

	// CurrentTime and CurrentInterval key metadata in current-conditions
	// units maps; units lookups only, never requestable.
	CurrentTime     CurrentVariable = "time"
	CurrentInterval CurrentVariable = "interval"
)

// Token returns the wire-format name of the variable.
func (v CurrentVariable) Token() string { return string(v) }

var (
	hourlyCatalog = []HourlyVariable{
		HourlyTemperature2m, HourlyTemperature80m, HourlyTemperature120m, HourlyTemperature180m,
		HourlyRelativeHumidity2m, HourlyDewPoint2m, HourlyApparentTemperature,
		HourlyPrecipitationProbability, HourlyPrecipitation, HourlyRain, HourlyShowers,
		HourlySnowfall, HourlySnowDepth, HourlyWeatherCode, HourlyPressureMSL,
		HourlySurfacePressure, HourlyCloudCover, HourlyCloudCoverLow, HourlyCloudCoverMid,
		HourlyCloudCoverHigh, HourlyVisibility, HourlyEvapotranspiration,
		HourlyET0FAOEvapotranspiration, HourlyVapourPressureDeficit,
		HourlyWindSpeed10m, HourlyWindSpeed80m, HourlyWindSpeed120m, HourlyWindSpeed180m,
		HourlyWindDirection10m, HourlyWindDirection80m, HourlyWindDirection120m,
		HourlyWindDirection180m, HourlyWindGusts10m,
		HourlySoilTemperature0cm, HourlySoilTemperature6cm, HourlySoilTemperature18cm,
		HourlySoilTemperature54cm, HourlySoilMoisture0To1cm, HourlySoilMoisture1To3cm,
		HourlySoilMoisture3To9cm, HourlySoilMoisture9To27cm, HourlySoilMoisture27To81cm,
		HourlyUVIndex, HourlyUVIndexClearSky, HourlyIsDay, HourlySunshineDuration,
		HourlyCAPE, HourlyFreezingLevelHeight, HourlyShortwaveRadiation,
		HourlyDirectRadiation, HourlyDiffuseRadiation, HourlyDirectNormalIrradiance,
		HourlyTerrestrialRadiation,
		HourlyTime,
	}

	dailyCatalog = []DailyVariable{
		DailyWeatherCode, DailyTemperature2mMax, DailyTemperature2mMin,
		DailyApparentTemperatureMax, DailyApparentTemperatureMin, DailySunrise, DailySunset,
		DailyDaylightDuration, DailySunshineDuration, DailyUVIndexMax, DailyUVIndexClearSkyMax,
		DailyPrecipitationSum, DailyRainSum, DailyShowersSum, DailySnowfallSum,
		DailyPrecipitationHours, DailyPrecipitationProbabilityMax, DailyWindSpeed10mMax,
		DailyWindGusts10mMax, DailyWindDirection10mDominant, DailyShortwaveRadiationSum,
		DailyET0FAOEvapotranspiration,
		DailyTime,
	}

	currentCatalog = []CurrentVariable{
		CurrentTemperature2m, CurrentRelativeHumidity2m, CurrentApparentTemperature,
		CurrentIsDay, CurrentPrecipitation, CurrentRain, CurrentShowers, CurrentSnowfall,
		CurrentWeatherCode, CurrentCloudCover, CurrentPressureMSL, CurrentSurfacePressure,
		CurrentWindSpeed10m, CurrentWindDirection10m, CurrentWindGusts10m,
		CurrentTime, CurrentInterval,
	}
)

var (
	hourlyTokens  = make(map[string]HourlyVariable, len(hourlyCatalog))
	dailyTokens   = make(map[string]DailyVariable, len(dailyCatalog))
	currentTokens = make(map[string]CurrentVariable, len(currentCatalog))
)

func init() {
	for _, v := range hourlyCatalog {
		hourlyTokens[v.name] = v
	}
	for _, v := range dailyCatalog {
		dailyTokens[string(v)] = v
	}
	for _, v := range currentCatalog {
		currentTokens[string(v)] = v
	}
}

// ParseHourlyVariable decodes a wire token into an hourly catalog member.
// Static tokens are matched first, case-sensitively and in full. A token that
// ends in "hPa" and matched nothing static is split at its first ASCII digit
// into a family prefix and an integer level; a bad prefix or a non-numeric
// level is reported as ErrInvalidPressureLevel, anything else as
// ErrUnknownVariable.
func ParseHourlyVariable(token string) (HourlyVariable, error) {
	if v, ok := hourlyTokens[token]; ok {
		return v, nil
	}
	if !strings.HasSuffix(token, "hPa") {
		return HourlyVariable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, token)
	}

	rest := strings.TrimSuffix(token, "hPa")
	i := strings.IndexAny(rest, "0123456789")
	if i < 0 {
		return HourlyVariable{}, fmt.Errorf("%w: no level digits in %q", ErrInvalidPressureLevel, token)
	}

	family := PressureFamily(rest[:i])
	if _, ok := pressureFamilies[family]; !ok {
		return HourlyVariable{}, fmt.Errorf("%w: unrecognized family in %q", ErrInvalidPressureLevel, token)
	}

	level, err := strconv.ParseUint(rest[i:], 10, 32)
	if err != nil {
		return HourlyVariable{}, fmt.Errorf("%w: bad level %q in %q", ErrInvalidPressureLevel, rest[i:], token)
	}

	return HourlyVariable{family: family, level: uint32(level)}, nil
}

// ParseDailyVariable decodes a wire token into a daily catalog member.
func ParseDailyVariable(token string) (DailyVariable, error) {
	if v, ok := dailyTokens[token]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariable, token)
}

// ParseCurrentVariable decodes a wire token into a current-conditions catalog
// member.
func ParseCurrentVariable(token string) (CurrentVariable, error) {
	if v, ok := currentTokens[token]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariable, token)
}
