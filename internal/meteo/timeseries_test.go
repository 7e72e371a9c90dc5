package meteo

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestHourlyDecode covers the end-to-end hourly scenario: a mixed static and
// pressure-level payload decodes into a two-entry value map aligned with the
// time axis.
func TestHourlyDecode(t *testing.T) {
	payload := `{
		"time": ["2024-01-01T00:00", "2024-01-01T01:00"],
		"temperature_2m": [5.1, 5.4],
		"temperature_850hPa": [-2.0, -2.1]
	}`

	var h HourlyTimeSeries
	if err := json.Unmarshal([]byte(payload), &h); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(h.Time) != 2 || h.Time[0] != "2024-01-01T00:00" || h.Time[1] != "2024-01-01T01:00" {
		t.Fatalf("unexpected time axis: %v", h.Time)
	}
	if len(h.Values) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(h.Values))
	}

	surface, ok := h.Values[HourlyTemperature2m]
	if !ok || len(surface) != 2 || surface[0] != 5.1 || surface[1] != 5.4 {
		t.Fatalf("unexpected temperature_2m samples: %v", surface)
	}

	aloft, ok := h.Values[OnPressureLevel(FamilyTemperature, 850)]
	if !ok || len(aloft) != 2 || aloft[0] != -2.0 || aloft[1] != -2.1 {
		t.Fatalf("unexpected temperature_850hPa samples: %v", aloft)
	}

	// "time" must not leak into the value map.
	if _, ok := h.Values[HourlyTime]; ok {
		t.Fatal("time axis leaked into the value map")
	}
}

func TestHourlyDecodeUnknownKey(t *testing.T) {
	payload := `{"time": ["2024-01-01T00:00"], "not_a_real_variable": [1.0]}`

	var h HourlyTimeSeries
	err := json.Unmarshal([]byte(payload), &h)
	if !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestHourlyDecodeBadPressureKey(t *testing.T) {
	payload := `{"time": ["2024-01-01T00:00"], "temperature_hPa": [1.0]}`

	var h HourlyTimeSeries
	err := json.Unmarshal([]byte(payload), &h)
	if !errors.Is(err, ErrInvalidPressureLevel) {
		t.Fatalf("expected ErrInvalidPressureLevel, got %v", err)
	}
}

func TestHourlyDecodeMissingTimeAxis(t *testing.T) {
	payload := `{"temperature_2m": [5.1, 5.4]}`

	var h HourlyTimeSeries
	err := json.Unmarshal([]byte(payload), &h)
	if !errors.Is(err, ErrTimeAxisMissing) {
		t.Fatalf("expected ErrTimeAxisMissing, got %v", err)
	}
}

// TestHourlyDecodeLengthMismatch verifies that a sample array longer than the
// time axis fails the whole decode rather than truncating.
func TestHourlyDecodeLengthMismatch(t *testing.T) {
	payload := `{
		"time": ["2024-01-01T00:00", "2024-01-01T01:00"],
		"temperature_2m": [5.1, 5.4, 5.9]
	}`

	var h HourlyTimeSeries
	err := json.Unmarshal([]byte(payload), &h)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestHourlyDecodeUnixTimeAxis(t *testing.T) {
	payload := `{"time": [1704067200, 1704070800], "precipitation": [0.0, 0.3]}`

	var h HourlyTimeSeries
	if err := json.Unmarshal([]byte(payload), &h); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if h.Time[0] != "1704067200" || h.Time[1] != "1704070800" {
		t.Fatalf("unexpected unixtime axis: %v", h.Time)
	}
}

func TestDailyDecode(t *testing.T) {
	payload := `{
		"time": ["2024-01-01", "2024-01-02"],
		"temperature_2m_max": [7.2, 6.8],
		"precipitation_sum": [0.0, 4.1]
	}`

	var d DailyTimeSeries
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(d.Values) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(d.Values))
	}
	if got := d.Values[DailyPrecipitationSum]; len(got) != 2 || got[1] != 4.1 {
		t.Fatalf("unexpected precipitation_sum samples: %v", got)
	}
}

func TestCurrentDecode(t *testing.T) {
	payload := `{
		"time": "2024-01-01T12:15",
		"interval": 900,
		"temperature_2m": 4.6,
		"weather_code": 61,
		"wind_speed_10m": 11.2
	}`

	var c CurrentConditions
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if c.Time != "2024-01-01T12:15" {
		t.Fatalf("unexpected time: %q", c.Time)
	}
	if c.Interval != 900 {
		t.Fatalf("unexpected interval: %d", c.Interval)
	}
	if len(c.Values) != 3 {
		t.Fatalf("expected 3 variables, got %d", len(c.Values))
	}
	if c.Values[CurrentWeatherCode] != 61 {
		t.Fatalf("unexpected weather_code: %v", c.Values[CurrentWeatherCode])
	}

	// The metadata keys must not appear as samples.
	if _, ok := c.Values[CurrentTime]; ok {
		t.Fatal("time leaked into the value map")
	}
	if _, ok := c.Values[CurrentInterval]; ok {
		t.Fatal("interval leaked into the value map")
	}
}

func TestCurrentDecodeMissingTime(t *testing.T) {
	payload := `{"temperature_2m": 4.6}`

	var c CurrentConditions
	err := json.Unmarshal([]byte(payload), &c)
	if !errors.Is(err, ErrTimeAxisMissing) {
		t.Fatalf("expected ErrTimeAxisMissing, got %v", err)
	}
}

// TestUnitsDecode verifies that units maps accept the time and interval
// sentinel keys alongside regular variables.
func TestUnitsDecode(t *testing.T) {
	var hu HourlyUnits
	payload := `{"time": "iso8601", "temperature_2m": "°C", "temperature_850hPa": "°C"}`
	if err := json.Unmarshal([]byte(payload), &hu); err != nil {
		t.Fatalf("hourly units decode failed: %v", err)
	}
	if hu[HourlyTime] != "iso8601" {
		t.Fatalf("expected time unit iso8601, got %q", hu[HourlyTime])
	}
	if hu[OnPressureLevel(FamilyTemperature, 850)] != "°C" {
		t.Fatal("missing pressure-level unit entry")
	}

	var cu CurrentUnits
	payload = `{"time": "iso8601", "interval": "seconds", "wind_speed_10m": "km/h"}`
	if err := json.Unmarshal([]byte(payload), &cu); err != nil {
		t.Fatalf("current units decode failed: %v", err)
	}
	if cu[CurrentInterval] != "seconds" {
		t.Fatalf("expected interval unit seconds, got %q", cu[CurrentInterval])
	}

	var du DailyUnits
	if err := json.Unmarshal([]byte(`{"bogus": "x"}`), &du); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable for bogus unit key, got %v", err)
	}
}

// TestForecastResponseDecode exercises a full response body with all three
// blocks and their units.
func TestForecastResponseDecode(t *testing.T) {
	payload := `{
		"latitude": 51.5,
		"longitude": -0.12,
		"elevation": 25.0,
		"generationtime_ms": 0.21,
		"utc_offset_seconds": 0,
		"timezone": "GMT",
		"timezone_abbreviation": "GMT",
		"hourly_units": {"time": "iso8601", "temperature_2m": "°C"},
		"hourly": {"time": ["2024-01-01T00:00"], "temperature_2m": [5.1]},
		"daily_units": {"time": "iso8601", "precipitation_sum": "mm"},
		"daily": {"time": ["2024-01-01"], "precipitation_sum": [0.4]},
		"current_units": {"time": "iso8601", "interval": "seconds", "temperature_2m": "°C"},
		"current": {"time": "2024-01-01T00:15", "interval": 900, "temperature_2m": 5.2}
	}`

	var resp ForecastResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if resp.Timezone != "GMT" || resp.Latitude != 51.5 {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	if resp.Hourly == nil || resp.Hourly.Values[HourlyTemperature2m][0] != 5.1 {
		t.Fatalf("unexpected hourly block: %+v", resp.Hourly)
	}
	if resp.Daily == nil || resp.Daily.Values[DailyPrecipitationSum][0] != 0.4 {
		t.Fatalf("unexpected daily block: %+v", resp.Daily)
	}
	if resp.Current == nil || resp.Current.Values[CurrentTemperature2m] != 5.2 {
		t.Fatalf("unexpected current block: %+v", resp.Current)
	}
	if resp.HourlyUnits[HourlyTemperature2m] != "°C" {
		t.Fatalf("unexpected hourly units: %v", resp.HourlyUnits)
	}
}
