package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Sylviettee/fjordgard/internal/meteo"
)

// Store is the contract the in-memory store (and any future persistent store)
// must satisfy.
type Store interface {
	Save(key string, snapshot Snapshot)
	Latest(key string) (Snapshot, error)
	Range(key string, from, to time.Time) ([]Snapshot, error)
}

// Forecaster is the slice of the Open-Meteo client the service depends on.
type Forecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64, opt *meteo.ForecastOptions) (*meteo.ForecastResponse, error)
}

// currentVariables is what Refresh requests to fill a Snapshot.
var currentVariables = []meteo.CurrentVariable{
	meteo.CurrentTemperature2m,
	meteo.CurrentApparentTemperature,
	meteo.CurrentRelativeHumidity2m,
	meteo.CurrentWindSpeed10m,
	meteo.CurrentWindDirection10m,
	meteo.CurrentPressureMSL,
	meteo.CurrentPrecipitation,
	meteo.CurrentCloudCover,
	meteo.CurrentWeatherCode,
	meteo.CurrentIsDay,
}

// Service fetches conditions from Open-Meteo and keeps snapshots in the store.
type Service struct {
	store     Store
	client    Forecaster
	locations map[string]Location
}

// NewService creates a Service tracking the given locations.
func NewService(store Store, client Forecaster, locations []Location) *Service {
	byKey := make(map[string]Location, len(locations))
	for _, loc := range locations {
		byKey[loc.Key()] = loc
	}
	return &Service{
		store:     store,
		client:    client,
		locations: byKey,
	}
}

// Locations returns the tracked locations.
func (s *Service) Locations() []Location {
	locs := make([]Location, 0, len(s.locations))
	for _, loc := range s.locations {
		locs = append(locs, loc)
	}
	return locs
}

// ErrUnknownLocation is returned for a location key that is not tracked.
var ErrUnknownLocation = errors.New("unknown location")

func (s *Service) lookup(key string) (Location, error) {
	loc, ok := s.locations[key]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, key)
	}
	return loc, nil
}

// Refresh fetches current conditions for the location and stores a snapshot.
func (s *Service) Refresh(ctx context.Context, loc Location) error {
	resp, err := s.client.Forecast(ctx, loc.Latitude, loc.Longitude, &meteo.ForecastOptions{
		Current:       currentVariables,
		WindSpeedUnit: meteo.MetersPerSecond,
		Timezone:      "UTC",
	})
	if err != nil {
		return fmt.Errorf("fetch current conditions for %s: %w", loc.Key(), err)
	}
	if resp.Current == nil {
		return fmt.Errorf("no current conditions in response for %s", loc.Key())
	}

	snap := snapshotFromCurrent(loc, resp.Current)
	s.store.Save(loc.Key(), snap)
	return nil
}

// RefreshAll refreshes every tracked location, logging and continuing on
// per-location failure.
func (s *Service) RefreshAll(ctx context.Context) {
	for _, loc := range s.locations {
		if err := s.Refresh(ctx, loc); err != nil {
			log.Printf("refresh failed for %s: %v", loc.Key(), err)
		}
	}
}

// Latest returns the most recent snapshot for a tracked location key.
func (s *Service) Latest(key string) (Snapshot, error) {
	if _, err := s.lookup(key); err != nil {
		return Snapshot{}, err
	}
	return s.store.Latest(key)
}

// History returns snapshots for a tracked location key between from and to.
func (s *Service) History(key string, from, to time.Time) ([]Snapshot, error) {
	if _, err := s.lookup(key); err != nil {
		return nil, err
	}
	return s.store.Range(key, from, to)
}

// Hourly fetches a live hourly forecast for a tracked location key.
func (s *Service) Hourly(ctx context.Context, key string, vars []meteo.HourlyVariable, days int) (*meteo.ForecastResponse, error) {
	loc, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	return s.client.Forecast(ctx, loc.Latitude, loc.Longitude, &meteo.ForecastOptions{
		Hourly:       vars,
		ForecastDays: &days,
		Timezone:     "UTC",
	})
}

// Daily fetches a live daily forecast for a tracked location key.
func (s *Service) Daily(ctx context.Context, key string, vars []meteo.DailyVariable, days int) (*meteo.ForecastResponse, error) {
	loc, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	return s.client.Forecast(ctx, loc.Latitude, loc.Longitude, &meteo.ForecastOptions{
		Daily:        vars,
		ForecastDays: &days,
		Timezone:     "UTC",
	})
}

// snapshotFromCurrent builds a Snapshot out of a decoded current-conditions
// block. Variables absent from the response leave their zero value.
func snapshotFromCurrent(loc Location, cur *meteo.CurrentConditions) Snapshot {
	ts, err := parseObservationTime(cur.Time)
	if err != nil {
		ts = time.Now().UTC()
	}

	code := int(cur.Values[meteo.CurrentWeatherCode])

	return Snapshot{
		Location:  loc,
		Timestamp: ts,

		Temperature:         cur.Values[meteo.CurrentTemperature2m],
		ApparentTemperature: cur.Values[meteo.CurrentApparentTemperature],
		Humidity:            cur.Values[meteo.CurrentRelativeHumidity2m],
		WindSpeed:           cur.Values[meteo.CurrentWindSpeed10m],
		WindDirection:       cur.Values[meteo.CurrentWindDirection10m],
		Pressure:            cur.Values[meteo.CurrentPressureMSL],
		Precipitation:       cur.Values[meteo.CurrentPrecipitation],
		CloudCover:          cur.Values[meteo.CurrentCloudCover],

		WeatherCode: code,
		Condition:   mapWeatherCode(code),
		IsDay:       cur.Values[meteo.CurrentIsDay] == 1,
	}
}

// parseObservationTime handles the API's minute-resolution ISO 8601 form as
// well as full RFC 3339 timestamps.
func parseObservationTime(s string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
