package transit_fx

import (
	"greenway/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideTransitService)

func provideTransitService() services.TransitServiceInterface {
	return services.NewTransitService()
}
