package meteo

import (
	"errors"
	"testing"
)

// TestStaticRoundTrip verifies that every static catalog member survives an
// encode/decode round trip unchanged.
func TestStaticRoundTrip(t *testing.T) {
	for _, v := range hourlyCatalog {
		got, err := ParseHourlyVariable(v.Token())
		if err != nil {
			t.Fatalf("ParseHourlyVariable(%q) failed: %v", v.Token(), err)
		}
		if got != v {
			t.Fatalf("round trip of %q: got %v, want %v", v.Token(), got, v)
		}
	}

	for _, v := range dailyCatalog {
		got, err := ParseDailyVariable(v.Token())
		if err != nil {
			t.Fatalf("ParseDailyVariable(%q) failed: %v", v.Token(), err)
		}
		if got != v {
			t.Fatalf("round trip of %q: got %v, want %v", v.Token(), got, v)
		}
	}

	for _, v := range currentCatalog {
		got, err := ParseCurrentVariable(v.Token())
		if err != nil {
			t.Fatalf("ParseCurrentVariable(%q) failed: %v", v.Token(), err)
		}
		if got != v {
			t.Fatalf("round trip of %q: got %v, want %v", v.Token(), got, v)
		}
	}
}

// TestPressureLevelRoundTrip verifies the parametric round trip across every
// family and a representative spread of levels.
func TestPressureLevelRoundTrip(t *testing.T) {
	families := []PressureFamily{
		FamilyTemperature, FamilyRelativeHumidity, FamilyDewPoint, FamilyCloudCover,
		FamilyWindSpeed, FamilyWindDirection, FamilyGeopotentialHeight,
	}
	levels := []uint32{0, 1, 500, 850, 1000, 999999}

	for _, f := range families {
		for _, level := range levels {
			v := OnPressureLevel(f, level)
			got, err := ParseHourlyVariable(v.Token())
			if err != nil {
				t.Fatalf("ParseHourlyVariable(%q) failed: %v", v.Token(), err)
			}
			if got != v {
				t.Fatalf("round trip of %q: got %v, want %v", v.Token(), got, v)
			}
		}
	}
}

func TestPressureLevelToken(t *testing.T) {
	v := OnPressureLevel(FamilyTemperature, 850)
	if v.Token() != "temperature_850hPa" {
		t.Fatalf("expected token temperature_850hPa, got %q", v.Token())
	}

	family, level, ok := v.PressureLevel()
	if !ok || family != FamilyTemperature || level != 850 {
		t.Fatalf("unexpected PressureLevel result: %v %v %v", family, level, ok)
	}

	if _, _, ok := HourlyTemperature2m.PressureLevel(); ok {
		t.Fatal("static variable reported a pressure level")
	}
}

// TestTokenInjectivity verifies that no two distinct catalog members share a
// token, including parametric members at representative levels.
func TestTokenInjectivity(t *testing.T) {
	seen := make(map[string]HourlyVariable)

	record := func(v HourlyVariable) {
		token := v.Token()
		if prev, ok := seen[token]; ok && prev != v {
			t.Fatalf("token %q produced by both %v and %v", token, prev, v)
		}
		seen[token] = v
	}

	for _, v := range hourlyCatalog {
		record(v)
	}
	for f := range pressureFamilies {
		for _, level := range []uint32{0, 10, 80, 500, 850} {
			record(OnPressureLevel(f, level))
		}
	}

	dailySeen := make(map[string]bool)
	for _, v := range dailyCatalog {
		if dailySeen[v.Token()] {
			t.Fatalf("duplicate daily token %q", v.Token())
		}
		dailySeen[v.Token()] = true
	}

	currentSeen := make(map[string]bool)
	for _, v := range currentCatalog {
		if currentSeen[v.Token()] {
			t.Fatalf("duplicate current token %q", v.Token())
		}
		currentSeen[v.Token()] = true
	}
}

func TestParseUnknownVariable(t *testing.T) {
	for _, token := range []string{"not_a_real_variable", "", "Temperature_2m"} {
		if _, err := ParseHourlyVariable(token); !errors.Is(err, ErrUnknownVariable) {
			t.Fatalf("ParseHourlyVariable(%q): expected ErrUnknownVariable, got %v", token, err)
		}
	}

	if _, err := ParseDailyVariable("temperature_2m"); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable for hourly token in daily catalog, got %v", err)
	}
	if _, err := ParseCurrentVariable("sunrise"); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable for daily token in current catalog, got %v", err)
	}
}

func TestParseMalformedPressureLevel(t *testing.T) {
	cases := []string{
		"bananas_abchPa",    // unrecognized prefix, no digits
		"temperature_hPa",   // missing digits
		"temperature_2mhPa", // trailing non-numeric segment
		"snowfall_500hPa",   // prefix is not a pressure-level family
		"temperature_-5hPa", // negative level
	}

	for _, token := range cases {
		if _, err := ParseHourlyVariable(token); !errors.Is(err, ErrInvalidPressureLevel) {
			t.Fatalf("ParseHourlyVariable(%q): expected ErrInvalidPressureLevel, got %v", token, err)
		}
	}
}

// TestFixedHeightWindPrecedence verifies that the fixed-height wind tokens
// resolve to their static members, not through the pressure-level fallback.
func TestFixedHeightWindPrecedence(t *testing.T) {
	cases := map[string]HourlyVariable{
		"wind_speed_10m":      HourlyWindSpeed10m,
		"wind_speed_180m":     HourlyWindSpeed180m,
		"wind_direction_120m": HourlyWindDirection120m,
	}

	for token, want := range cases {
		got, err := ParseHourlyVariable(token)
		if err != nil {
			t.Fatalf("ParseHourlyVariable(%q) failed: %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseHourlyVariable(%q): got %v, want %v", token, got, want)
		}
		if _, _, ok := got.PressureLevel(); ok {
			t.Fatalf("%q decoded as a pressure-level variable", token)
		}
	}

	// The same families still work as pressure-level variables.
	got, err := ParseHourlyVariable("wind_speed_850hPa")
	if err != nil {
		t.Fatalf("ParseHourlyVariable(wind_speed_850hPa) failed: %v", err)
	}
	if got != OnPressureLevel(FamilyWindSpeed, 850) {
		t.Fatalf("unexpected decode of wind_speed_850hPa: %v", got)
	}
}
