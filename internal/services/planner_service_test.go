package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"greenway/internal/itinerary"
	"greenway/internal/models/db_models"
	"greenway/internal/models/request_models"
	"greenway/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlannerFixture(planner *fakePlannerClient, geocoder *fakeGeocoder) (PlannerServiceInterface, *fakeTripRepo, *fakeAccountRepo, *db_models.Account) {
	tripRepo := newFakeTripRepo()
	accountRepo := newFakeAccountRepo()
	account := &db_models.Account{Username: "vibhas", GreenScore: 756}
	accountRepo.add(account)

	builder := itinerary.NewBuilder(itinerary.HyderabadProfile(), rand.New(rand.NewSource(1)))
	svc := NewPlannerService(planner, geocoder, builder, tripRepo, accountRepo, rand.New(rand.NewSource(1)), zap.NewNop())
	return svc, tripRepo, accountRepo, account
}

func planRequest(location string) request_models.PlanTripRequest {
	return request_models.PlanTripRequest{
		Title:     "Spring getaway",
		Location:  location,
		StartDate: "2025-03-30",
		EndDate:   "2025-04-03",
		Travelers: 2,
	}
}

func TestPlanTripCuratedCitySkipsProvider(t *testing.T) {
	planner := &fakePlannerClient{err: errors.New("should not be called")}
	svc, tripRepo, accountRepo, account := newPlannerFixture(planner, &fakeGeocoder{lat: 17.385, lon: 78.4867})

	resp, err := svc.PlanTrip(context.Background(), account.ID.String(), planRequest("Hyderabad, India"))

	require.NoError(t, err)
	assert.Zero(t, planner.calls, "curated city must not hit the LLM")
	require.Len(t, resp.Days, 5)
	assert.Equal(t, "2025-03-30", resp.Days[0].Date)
	assert.Equal(t, "upcoming", resp.Status)
	assert.NotEmpty(t, resp.MapCoordinates)

	require.Len(t, tripRepo.inserted, 1)
	assert.Equal(t, tripPlannedReward, accountRepo.awarded[account.ID.String()])
}

func TestPlanTripProviderDocumentParsed(t *testing.T) {
	planner := &fakePlannerClient{response: "Day 1: Lakeside\n9:00 AM Boat ride on the lake\n11:00 AM Visit the city museum heritage wing\n2:00 PM Street food walk, eat local snacks\n"}
	svc, _, _, account := newPlannerFixture(planner, &fakeGeocoder{lat: 12.97, lon: 77.59})

	resp, err := svc.PlanTrip(context.Background(), account.ID.String(), planRequest("Bengaluru"))

	require.NoError(t, err)
	assert.Equal(t, 1, planner.calls)
	require.Len(t, resp.Days, 5)
	// Day one came from the provider text, the remaining days are backfilled.
	require.Len(t, resp.Days[0].Activities, 3)
	assert.Equal(t, "9:00 AM", resp.Days[0].Activities[0].Time)
	for _, day := range resp.Days[1:] {
		assert.Len(t, day.Activities, 5)
	}
}

func TestPlanTripProviderFailureFallsBack(t *testing.T) {
	planner := &fakePlannerClient{err: errors.New("upstream down")}
	svc, tripRepo, _, account := newPlannerFixture(planner, &fakeGeocoder{err: errors.New("no network")})

	resp, err := svc.PlanTrip(context.Background(), account.ID.String(), planRequest("Bengaluru"))

	require.NoError(t, err, "provider failure must not surface to the traveler")
	require.Len(t, resp.Days, 5)
	for _, day := range resp.Days {
		assert.GreaterOrEqual(t, len(day.Activities), 3)
	}
	assert.Nil(t, tripRepo.inserted[0].MapLat, "failed geocoding leaves no map center")
}

func TestPlanTripInvalidDates(t *testing.T) {
	svc, _, _, account := newPlannerFixture(&fakePlannerClient{}, &fakeGeocoder{})

	tests := []struct {
		name       string
		start, end string
	}{
		{"malformed start", "soon", "2025-04-03"},
		{"malformed end", "2025-03-30", "later"},
		{"end before start", "2025-04-03", "2025-03-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := planRequest("Bengaluru")
			req.StartDate, req.EndDate = tt.start, tt.end
			_, err := svc.PlanTrip(context.Background(), account.ID.String(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestPlanTripBudgetDefaultsToActivityTotal(t *testing.T) {
	svc, tripRepo, _, account := newPlannerFixture(&fakePlannerClient{err: errors.New("down")}, &fakeGeocoder{})

	req := planRequest("Bengaluru")
	req.Budget = 0
	_, err := svc.PlanTrip(context.Background(), account.ID.String(), req)

	require.NoError(t, err)
	assert.Greater(t, tripRepo.inserted[0].Budget, 0, "budget should sum backfilled activity costs")
}

func TestPlanTripPersistFailure(t *testing.T) {
	svc, tripRepo, _, account := newPlannerFixture(&fakePlannerClient{err: errors.New("down")}, &fakeGeocoder{})
	tripRepo.failWith = errFakeRepo

	_, err := svc.PlanTrip(context.Background(), account.ID.String(), planRequest("Bengaluru"))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
