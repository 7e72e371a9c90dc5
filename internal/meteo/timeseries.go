package meteo

import (
	"encoding/json"
	"fmt"
)

// HourlyTimeSeries is the decoded "hourly" response block: a time axis plus
// one sample array per requested variable, aligned index-for-index with the
// axis.
type HourlyTimeSeries struct {
	// Time holds the axis timestamps as sent by the server: ISO 8601 strings,
	// or decimal epoch seconds when the unixtime format was requested.
	Time []string

	// Values maps each decoded variable to its sample array. Iteration order
	// is unspecified.
	Values map[HourlyVariable][]float64
}

// DailyTimeSeries is the decoded "daily" response block.
type DailyTimeSeries struct {
	Time   []string
	Values map[DailyVariable][]float64
}

// CurrentConditions is the decoded "current" response block: one timestamp,
// one scalar per requested variable.
type CurrentConditions struct {
	Time string

	// Interval is the aggregation window of the readings, in seconds.
	Interval int

	Values map[CurrentVariable]float64
}

// Units maps variables to the unit strings the server reported for them, e.g.
// "°C" or "hPa". Unlike the value maps, units may contain the time (and for
// current conditions, interval) sentinel keys.
type (
	HourlyUnits  map[HourlyVariable]string
	DailyUnits   map[DailyVariable]string
	CurrentUnits map[CurrentVariable]string
)

// decodeTimeValue accepts either a JSON string (iso8601) or a JSON number
// (unixtime) and returns its textual form.
func decodeTimeValue(msg json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("invalid time value %s", msg)
}

func decodeTimeAxis(msg json.RawMessage) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, fmt.Errorf("time axis: %w", err)
	}
	axis := make([]string, len(raw))
	for i, el := range raw {
		v, err := decodeTimeValue(el)
		if err != nil {
			return nil, err
		}
		axis[i] = v
	}
	return axis, nil
}

// decodeSampleArrays turns the remaining keys of a time-series object into a
// variable-keyed map of sample arrays. Every key must decode; every array
// must match the axis length.
func decodeSampleArrays[V comparable](
	raw map[string]json.RawMessage,
	axisLen int,
	parse func(string) (V, error),
) (map[V][]float64, error) {
	values := make(map[V][]float64, len(raw))
	for key, msg := range raw {
		v, err := parse(key)
		if err != nil {
			return nil, err
		}
		var samples []float64
		if err := json.Unmarshal(msg, &samples); err != nil {
			return nil, fmt.Errorf("variable %q: %w", key, err)
		}
		if len(samples) != axisLen {
			return nil, fmt.Errorf("%w: %q has %d samples, axis has %d",
				ErrLengthMismatch, key, len(samples), axisLen)
		}
		values[v] = samples
	}
	return values, nil
}

// UnmarshalJSON decodes an hourly payload. The "time" key becomes the axis;
// every other key is decoded through ParseHourlyVariable, and an unknown key
// fails the whole payload rather than being dropped.
func (h *HourlyTimeSeries) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	axisRaw, ok := raw["time"]
	if !ok {
		return ErrTimeAxisMissing
	}
	delete(raw, "time")

	axis, err := decodeTimeAxis(axisRaw)
	if err != nil {
		return err
	}

	values, err := decodeSampleArrays(raw, len(axis), ParseHourlyVariable)
	if err != nil {
		return err
	}

	h.Time = axis
	h.Values = values
	return nil
}

// UnmarshalJSON decodes a daily payload; see HourlyTimeSeries.UnmarshalJSON.
func (d *DailyTimeSeries) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	axisRaw, ok := raw["time"]
	if !ok {
		return ErrTimeAxisMissing
	}
	delete(raw, "time")

	axis, err := decodeTimeAxis(axisRaw)
	if err != nil {
		return err
	}

	values, err := decodeSampleArrays(raw, len(axis), ParseDailyVariable)
	if err != nil {
		return err
	}

	d.Time = axis
	d.Values = values
	return nil
}

// UnmarshalJSON decodes a current-conditions payload. The "time" and
// "interval" keys go to their fixed fields; every other key is a scalar
// sample keyed by its decoded variable.
func (c *CurrentConditions) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	timeRaw, ok := raw["time"]
	if !ok {
		return ErrTimeAxisMissing
	}
	delete(raw, "time")

	ts, err := decodeTimeValue(timeRaw)
	if err != nil {
		return err
	}

	interval := 0
	if msg, ok := raw["interval"]; ok {
		delete(raw, "interval")
		if err := json.Unmarshal(msg, &interval); err != nil {
			return fmt.Errorf("interval: %w", err)
		}
	}

	values := make(map[CurrentVariable]float64, len(raw))
	for key, msg := range raw {
		v, err := ParseCurrentVariable(key)
		if err != nil {
			return err
		}
		var sample float64
		if err := json.Unmarshal(msg, &sample); err != nil {
			return fmt.Errorf("variable %q: %w", key, err)
		}
		values[v] = sample
	}

	c.Time = ts
	c.Interval = interval
	c.Values = values
	return nil
}

// MarshalJSON renders the series back into its wire shape: a flat object with
// the time axis alongside token-keyed sample arrays.
func (h HourlyTimeSeries) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h.Values)+1)
	out["time"] = h.Time
	for v, samples := range h.Values {
		out[v.Token()] = samples
	}
	return json.Marshal(out)
}

// MarshalJSON renders the series back into its wire shape.
func (d DailyTimeSeries) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Values)+1)
	out["time"] = d.Time
	for v, samples := range d.Values {
		out[v.Token()] = samples
	}
	return json.Marshal(out)
}

// MarshalJSON renders the conditions back into their wire shape.
func (c CurrentConditions) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Values)+2)
	out["time"] = c.Time
	out["interval"] = c.Interval
	for v, sample := range c.Values {
		out[v.Token()] = sample
	}
	return json.Marshal(out)
}

func decodeUnits[V comparable](data []byte, parse func(string) (V, error)) (map[V]string, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	units := make(map[V]string, len(raw))
	for key, unit := range raw {
		v, err := parse(key)
		if err != nil {
			return nil, err
		}
		units[v] = unit
	}
	return units, nil
}

func (u *HourlyUnits) UnmarshalJSON(data []byte) error {
	units, err := decodeUnits(data, ParseHourlyVariable)
	if err != nil {
		return err
	}
	*u = units
	return nil
}

func (u *DailyUnits) UnmarshalJSON(data []byte) error {
	units, err := decodeUnits(data, ParseDailyVariable)
	if err != nil {
		return err
	}
	*u = units
	return nil
}

func (u *CurrentUnits) UnmarshalJSON(data []byte) error {
	units, err := decodeUnits(data, ParseCurrentVariable)
	if err != nil {
		return err
	}
	*u = units
	return nil
}
