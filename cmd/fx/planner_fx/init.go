package planner_fx

import (
	"log"
	"os"

	"greenway/internal/itinerary"
	"greenway/internal/repositories"
	"greenway/internal/services"
	"greenway/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	providePlannerClient, provideGeocoder, providePlannerService)

func providePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("PLANNER_PROVIDER")

	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := utils.NewPlannerClient(provider, apiKey, os.Getenv("DEEPSEEK_BASE_URL"), "")
	if err != nil {
		log.Fatalf("Failed to create planner client: %v", err)
	}
	return client
}

func provideGeocoder() utils.GeocoderInterface {
	return utils.NewNominatimGeocoder()
}

func providePlannerService(
	planner utils.PlannerClientInterface,
	geocoder utils.GeocoderInterface,
	builder *itinerary.Builder,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(planner, geocoder, builder, tripRepo, accountRepo, nil, logger)
}
