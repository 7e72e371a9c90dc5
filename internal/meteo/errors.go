package meteo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariable is returned when a response key matches neither the
	// static token tables nor the pressure-level token shape.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrInvalidPressureLevel is returned when a token ends in "hPa" but its
	// family prefix or numeric level cannot be parsed.
	ErrInvalidPressureLevel = errors.New("invalid pressure level")

	// ErrTimeAxisMissing is returned when a time-series payload has no "time" key.
	ErrTimeAxisMissing = errors.New(`time-series payload has no "time" key`)

	// ErrLengthMismatch is returned when a variable's sample array disagrees
	// in length with the time axis.
	ErrLengthMismatch = errors.New("sample count does not match time axis")
)

// APIError is an error reported by the Open-Meteo API itself, i.e. a response
// body of the form {"error": true, "reason": "..."}.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("open-meteo: request failed with status %d", e.StatusCode)
	}
	return "open-meteo: " + e.Reason
}
