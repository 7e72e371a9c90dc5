package weather

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/Sylviettee/fjordgard/internal/meteo"
)

// Geocoder is the slice of the Open-Meteo client used for place-name lookups.
type Geocoder interface {
	Geocode(ctx context.Context, name string, opt *meteo.GeocodeOptions) ([]meteo.GeocodeResult, error)
}

// ResolveLocations turns configured place names into coordinates. Names are
// resolved through the Google geocoder when an API key is configured,
// otherwise through Open-Meteo's geocoding search. The configured name is
// kept as the location key.
func ResolveLocations(ctx context.Context, names []string, googleAPIKey string, gc Geocoder) ([]Location, error) {
	var locs []Location
	for _, name := range names {
		loc, err := resolveLocation(ctx, name, googleAPIKey, gc)
		if err != nil {
			return nil, fmt.Errorf("resolve location %q: %w", name, err)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

func resolveLocation(ctx context.Context, name, googleAPIKey string, gc Geocoder) (Location, error) {
	if googleAPIKey != "" {
		geocoder.ApiKey = googleAPIKey

		coords, err := geocoder.Geocoding(geocoder.Address{City: name})
		if err != nil {
			return Location{}, err
		}
		return Location{Name: name, Latitude: coords.Latitude, Longitude: coords.Longitude}, nil
	}

	count := 1
	results, err := gc.Geocode(ctx, name, &meteo.GeocodeOptions{Count: &count})
	if err != nil {
		return Location{}, err
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("no geocoding results")
	}

	return Location{
		Name:      name,
		Latitude:  results[0].Latitude,
		Longitude: results[0].Longitude,
	}, nil
}
