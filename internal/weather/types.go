package weather

// APIDaily is the "daily" object of the forecast response: parallel arrays indexed by day offset.
// Numeric series are pointers because the API sends null for missing values.
type APIDaily struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	Sunrise          []string   `json:"sunrise"`
	Sunset           []string   `json:"sunset"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	Windspeed10mMax  []*float64 `json:"windspeed_10m_max"`
}

// APIResponse is the JSON document returned by the forecast endpoint
type APIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationTimeMs     float64           `json:"generationtime_ms"`
	UTCOffsetSeconds     int64             `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	DailyUnits           map[string]string `json:"daily_units"`
	Daily                *APIDaily         `json:"daily"`
}

// QueryParams describes a forecast request
type QueryParams struct {
	Latitude          float64
	Longitude         float64
	Timezone          string
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
}
