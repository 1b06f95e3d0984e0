package controllers_fx

import (
	"greenway/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewTransitController),
	fx.Provide(controllers.NewAirQualityController),
	fx.Provide(controllers.NewStoreController))
