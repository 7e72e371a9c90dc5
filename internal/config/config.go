package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sylviettee/fjordgard/internal/weather"
)

type AppConfig struct {
	// MeteoAPIKey enables the Open-Meteo commercial API. Optional.
	MeteoAPIKey string

	// GoogleGeocoderKey switches place-name resolution to the Google
	// geocoder. Optional; Open-Meteo geocoding is used without it.
	GoogleGeocoderKey string

	// RefreshInterval controls how often snapshots are refreshed.
	RefreshInterval time.Duration

	// Locations with explicit coordinates.
	Locations []weather.Location

	// PlaceNames still need geocoding at startup.
	PlaceNames []string

	// In-memory store retention.
	StoreMaxHistory int           // max snapshots per location (0 = unlimited)
	StoreMaxAge     time.Duration // max snapshot age (0 = unlimited)

	HTTPTimeout time.Duration
	Port        string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.MeteoAPIKey = os.Getenv("OPENMETEO_API_KEY")
	cfg.GoogleGeocoderKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	intervalStr := getenvDefault("REFRESH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	if err := cfg.parseLocations(os.Getenv("WEATHER_LOCATIONS")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseLocations splits a semicolon-separated location list. Each entry is
// either "lat,lon[,name]" or a free-form place name to geocode at startup.
func (c *AppConfig) parseLocations(raw string) error {
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ",")
		if len(parts) >= 2 {
			lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if latErr == nil && lonErr == nil {
				loc := weather.Location{Latitude: lat, Longitude: lon}
				if len(parts) > 2 {
					loc.Name = strings.TrimSpace(strings.Join(parts[2:], ","))
				}
				c.Locations = append(c.Locations, loc)
				continue
			}
		}

		c.PlaceNames = append(c.PlaceNames, entry)
	}

	if len(c.Locations) == 0 && len(c.PlaceNames) == 0 {
		return fmt.Errorf("WEATHER_LOCATIONS must list at least one location")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
