package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractActivityDefaults(t *testing.T) {
	profile := HyderabadProfile()

	act := extractActivity("completely structure-free text", TransportOther, profile)

	assert.Equal(t, "12:00", act.Time)
	assert.Equal(t, "Explore Local Attraction", act.Title)
	assert.Equal(t, "Visit a local attraction and explore the area", act.Description)
	assert.Equal(t, profile.CityCenter.Name, act.Location)
	require.NotNil(t, act.Coordinates)
	assert.Equal(t, profile.CityCenter.Coordinates, *act.Coordinates)
	assert.Equal(t, "2 hours", act.Duration)
	assert.Equal(t, 500, act.Cost)
	assert.Equal(t, []string{"sightseeing"}, act.Tags)
}

func TestExtractActivityFields(t *testing.T) {
	profile := HyderabadProfile()

	act := extractActivity("10:00 AM Museum trip, heritage building walkthrough\nCost: ₹250", TransportBus, profile)

	assert.Equal(t, "10:00 AM", act.Time)
	assert.Equal(t, 250, act.Cost)
	assert.Contains(t, act.Tags, "cultural")
	assert.Equal(t, TransportBus, act.TransportMode)
}

func TestExtractActivityLandmark(t *testing.T) {
	profile := HyderabadProfile()

	act := extractActivity("3:00 PM Golconda Fort sound and light show", TransportOther, profile)

	assert.Equal(t, "Golconda Fort", act.Location)
	require.NotNil(t, act.Coordinates)
	assert.InDelta(t, 17.3833, act.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 78.4011, act.Coordinates.Lon, 1e-9)
}

func TestExtractActivityDuration(t *testing.T) {
	tests := []struct {
		chunk    string
		expected string
	}{
		{"spend 3 hours wandering", "3 hours"},
		{"a brisk 45 min ride", "45 minutes"},
		{"roughly 1 hr detour", "1 hours"},
		{"no duration mentioned", "2 hours"},
	}

	profile := HyderabadProfile()
	for _, tt := range tests {
		act := extractActivity(tt.chunk, TransportOther, profile)
		assert.Equal(t, tt.expected, act.Duration, "chunk %q", tt.chunk)
	}
}

func TestExtractActivityCostVariants(t *testing.T) {
	tests := []struct {
		chunk    string
		expected int
	}{
		{"entry fee ₹250", 250},
		{"ticket Rs. 120 per head", 120},
		{"around Rupees 90", 90},
		{"free entry", 500},
	}

	profile := HyderabadProfile()
	for _, tt := range tests {
		act := extractActivity(tt.chunk, TransportOther, profile)
		assert.Equal(t, tt.expected, act.Cost, "chunk %q", tt.chunk)
	}
}

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"morning hike and trek", []string{"hiking"}},
		{"eat at a restaurant near the lake", []string{"food", "nature"}},
		{"museum then historical palace", []string{"cultural"}},
		{"nothing matches here", []string{"sightseeing"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, deriveTags(tt.text), "text %q", tt.text)
	}
}

func TestDeriveTransportPriority(t *testing.T) {
	tests := []struct {
		text     string
		expected TransportMode
	}{
		{"🚶 walking day", TransportWalk},
		{"🚲 cycle everywhere", TransportBike},
		{"🚴 cycling tour", TransportBike},
		{"🚌 bus hop", TransportBus},
		{"🚋 tram ride", TransportTrain},
		// Walk outranks the rest regardless of position.
		{"🚋 header but 🚶 later", TransportWalk},
		{"🚋 header with 🚲 in body", TransportBike},
		{"no markers at all", TransportOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, deriveTransport(tt.text), "text %q", tt.text)
	}
}

func TestSplitDays(t *testing.T) {
	doc := "Day 1: first\ncontent one\nDay 2: second\ncontent two"

	blocks := splitDays(doc)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "content one")
	assert.Contains(t, blocks[1], "content two")
}

func TestSplitDaysWithoutHeadings(t *testing.T) {
	blocks := splitDays("just one blob of text")
	require.Len(t, blocks, 1)
}

func TestSplitActivities(t *testing.T) {
	day := "heading noise\n9:00 AM first stop\ndetails\n2:30 PM second stop"

	chunks := splitActivities(day)

	require.Len(t, chunks, 2)
	assert.True(t, len(chunks[0]) > 0 && chunks[0][0] == '9')
	assert.Contains(t, chunks[0], "details")
	assert.Contains(t, chunks[1], "second stop")
}

func TestSplitActivitiesNoTokens(t *testing.T) {
	assert.Empty(t, splitActivities("no times anywhere"))
}
