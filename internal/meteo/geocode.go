package meteo

type geocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

// GeocodeResult is a single place returned by the geocoding search endpoint.
type GeocodeResult struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	Timezone    string   `json:"timezone"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	CountryID   int      `json:"country_id"`
	Population  int      `json:"population"`
	Postcodes   []string `json:"postcodes"`

	Admin1 string `json:"admin1,omitempty"`
	Admin2 string `json:"admin2,omitempty"`
	Admin3 string `json:"admin3,omitempty"`
	Admin4 string `json:"admin4,omitempty"`

	Admin1ID int `json:"admin1_id,omitempty"`
	Admin2ID int `json:"admin2_id,omitempty"`
	Admin3ID int `json:"admin3_id,omitempty"`
	Admin4ID int `json:"admin4_id,omitempty"`
}
