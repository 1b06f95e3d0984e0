package services

import (
	"context"

	"greenway/internal/models/db_models"
	"greenway/internal/models/response_models"
	"greenway/internal/repositories"
	"greenway/pkg/utils"

	"github.com/google/uuid"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error)
	GetTripDetails(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, toTripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}

	return BuildTripDetailResponse(trip), nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	resp := response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Description: trip.Description,
		Location:    trip.Location,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Status:      trip.Status,
		TravelType:  trip.TravelType,
		Travelers:   trip.Travelers,
		Budget:      trip.Budget,
		CarbonSaved: trip.CarbonSaved,
		ImageURL:    trip.ImageURL,
	}
	if trip.MapLat != nil && trip.MapLon != nil {
		resp.MapCenter = &response_models.MapCoordinate{
			Name: trip.Location,
			Lat:  *trip.MapLat,
			Lon:  *trip.MapLon,
		}
	}
	return resp
}

// BuildTripDetailResponse flattens a trip with its days and activities and
// collects the deduplicated coordinate list used by the map view.
func BuildTripDetailResponse(trip *db_models.Trip) *response_models.TripDetailResponse {
	detail := &response_models.TripDetailResponse{
		TripResponse: toTripResponse(trip),
	}

	seen := make(map[string]bool)
	for i := range trip.Days {
		day := &trip.Days[i]
		dayResp := response_models.TripDayResponse{
			Day:           day.DayIndex,
			Title:         day.Title,
			Date:          day.Date,
			TransportMode: day.TransportMode,
		}
		for j := range day.Activities {
			act := &day.Activities[j]
			actResp := response_models.ActivityResponse{
				Time:          act.Time,
				Title:         act.Title,
				Description:   act.Description,
				Location:      act.Location,
				Duration:      act.Duration,
				Cost:          act.Cost,
				Tags:          act.TagList(),
				TransportMode: act.TransportMode,
			}
			if act.Lat != nil && act.Lon != nil {
				coord := response_models.MapCoordinate{
					Name: act.Location,
					Lat:  *act.Lat,
					Lon:  *act.Lon,
				}
				actResp.Coordinates = &coord
				if !seen[coord.Name] {
					seen[coord.Name] = true
					detail.MapCoordinates = append(detail.MapCoordinates, coord)
				}
			}
			dayResp.Activities = append(dayResp.Activities, actResp)
		}
		detail.Days = append(detail.Days, dayResp)
	}

	return detail
}

func toUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
