package itinerary_fx

import (
	"greenway/internal/itinerary"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideBuilder)

func provideBuilder() *itinerary.Builder {
	// nil rng seeds from the clock; tests construct their own builder
	return itinerary.NewBuilder(itinerary.HyderabadProfile(), nil)
}
