package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	mem "greenway/pkg/memcache"

	"greenway/internal/models/response_models"
)

const airQualityCacheTTL = 10 * time.Minute

type AirQualityServiceInterface interface {
	ForLocation(ctx context.Context, lat, lon float64, location string) (*response_models.AirQualityResponse, error)
}

// AirQualityService serves deterministic synthetic readings. Without a live
// sensor feed the value is derived from the coordinates, so the same place
// always reports the same air, and repeated lookups hit the cache.
type AirQualityService struct {
	cache *mem.TTLCache[response_models.AirQualityResponse]
	now   func() time.Time
}

func NewAirQualityService() AirQualityServiceInterface {
	return &AirQualityService{
		cache: mem.NewTTLCache[response_models.AirQualityResponse](),
		now:   time.Now,
	}
}

func (a *AirQualityService) ForLocation(ctx context.Context, lat, lon float64, location string) (*response_models.AirQualityResponse, error) {
	key := fmt.Sprintf("%.3f:%.3f", lat, lon)
	if cached, ok := a.cache.Get(key); ok {
		return &cached, nil
	}

	aqi := syntheticAQI(lat, lon)
	resp := response_models.AirQualityResponse{
		AQI:    aqi,
		Status: airQualityStatus(aqi),
		Pollutants: response_models.Pollutants{
			PM25: round2(float64(aqi) * 0.3),
			O3:   round2(float64(aqi) * 1.6),
			NO2:  round2(float64(aqi) * 0.35),
			SO2:  round2(float64(aqi) * 0.07),
			CO:   round2(float64(aqi) * 0.012),
		},
		Location:  location,
		Timestamp: a.now().UTC().Format(time.RFC3339),
	}

	a.cache.Set(key, resp, airQualityCacheTTL)
	return &resp, nil
}

// syntheticAQI hashes the rounded coordinates into the 20..170 range, which
// covers Good through Unhealthy without ever reporting Hazardous.
func syntheticAQI(lat, lon float64) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%.3f:%.3f", lat, lon)
	return int(h.Sum32()%151) + 20
}

func airQualityStatus(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
