package airquality_fx

import (
	"greenway/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideAirQualityService)

func provideAirQualityService() services.AirQualityServiceInterface {
	return services.NewAirQualityService()
}
