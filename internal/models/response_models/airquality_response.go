package response_models

type Pollutants struct {
	PM25 float64 `json:"pm25"`
	O3   float64 `json:"o3"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
}

type AirQualityResponse struct {
	AQI        int        `json:"aqi"`
	Status     string     `json:"status"`
	Pollutants Pollutants `json:"pollutants"`
	Location   string     `json:"location"`
	Timestamp  string     `json:"timestamp"`
}
