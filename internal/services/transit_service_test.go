package services

import (
	"context"
	"testing"

	"greenway/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyStops(t *testing.T) {
	svc := NewTransitService()

	// Right on top of MGBS.
	stops, err := svc.NearbyStops(context.Background(), 17.3784, 78.4839, 1)
	require.NoError(t, err)
	require.NotEmpty(t, stops)
	assert.Equal(t, "MGBS", stops[0].StopID)

	// Middle of the ocean.
	stops, err = svc.NearbyStops(context.Background(), 0, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestBestRoute(t *testing.T) {
	svc := NewTransitService()

	route, err := svc.BestRoute(context.Background(), "MGBS", "JUBS")
	require.NoError(t, err)
	assert.Equal(t, "RED", route.RouteID)
	assert.Equal(t, "Red Line", route.RouteName)
	assert.Greater(t, route.DistanceKm, 0.0)
	assert.Greater(t, route.FareRupees, fareBaseRupees)
	assert.Greater(t, route.DurationMinutes, 0)

	// No line serves both stops directly.
	_, err = svc.BestRoute(context.Background(), "MGBS", "MIYAPUR")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.BestRoute(context.Background(), "NOPE", "JUBS")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTransportOptionsInsideHyderabad(t *testing.T) {
	svc := NewTransitService()

	options, err := svc.TransportOptions(context.Background(), 17.3616, 78.4747, 17.4239, 78.4738)
	require.NoError(t, err)
	require.Len(t, options, 5)

	types := make([]string, 0, len(options))
	for _, o := range options {
		types = append(types, o.Type)
		assert.NotEmpty(t, o.MapPath)
	}
	assert.Equal(t, []string{"train", "bus", "bike", "walk", "car"}, types)
}

func TestTransportOptionsElsewhere(t *testing.T) {
	svc := NewTransitService()

	// Bengaluru: no metro stops in the static feed, no train option.
	options, err := svc.TransportOptions(context.Background(), 12.97, 77.59, 12.98, 77.60)
	require.NoError(t, err)
	require.Len(t, options, 3)
	for _, o := range options {
		assert.NotEqual(t, "train", o.Type)
	}
}

func TestCarbonFootprint(t *testing.T) {
	svc := NewTransitService()

	tests := []struct {
		mode     string
		distance float64
		carbon   float64
		saved    float64
	}{
		{"bus", 10, 1.0, 1.0},
		{"train", 10, 0.5, 1.5},
		{"walk", 10, 0, 2.0},
		{"bike", 5, 0, 1.0},
		{"car", 10, 2.0, 0},
	}

	for _, tt := range tests {
		resp, err := svc.CarbonFootprint(context.Background(), tt.mode, tt.distance)
		require.NoError(t, err, tt.mode)
		assert.InDelta(t, tt.carbon, resp.CarbonKg, 1e-9, tt.mode)
		assert.InDelta(t, tt.saved, resp.SavedKg, 1e-9, tt.mode)
	}

	_, err := svc.CarbonFootprint(context.Background(), "rocket", 10)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CarbonFootprint(context.Background(), "bus", -1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
