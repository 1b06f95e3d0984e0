package itinerary

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(seed int64) *Builder {
	return NewBuilder(HyderabadProfile(), rand.New(rand.NewSource(seed)))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildNeverFails(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"whitespace only", "   \n\n\t  "},
		{"garbage", "@@@###!!! lorem ipsum &&&"},
		{"huge unstructured input", strings.Repeat("x", 50_000)},
		{"headings without activities", "Day 1: Nothing\nDay 2: Still nothing"},
	}

	start := date(2025, time.March, 30)
	end := date(2025, time.April, 3)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := newTestBuilder(1).Build(tt.doc, start, end)

			require.Len(t, days, 5)
			for i, day := range days {
				assert.Equal(t, i+1, day.Index)
				assert.Equal(t, start.AddDate(0, 0, i), day.Date)
				assert.GreaterOrEqual(t, len(day.Activities), 3)
				for _, act := range day.Activities {
					assert.NotEmpty(t, act.Time)
					assert.NotEmpty(t, act.Title)
					assert.NotEmpty(t, act.Tags)
				}
			}
		})
	}
}

func TestBuildClampsInvertedRange(t *testing.T) {
	days := newTestBuilder(1).Build("", date(2025, time.June, 10), date(2025, time.June, 1))

	require.Len(t, days, 1)
	assert.Equal(t, date(2025, time.June, 10), days[0].Date)
}

func TestBuildSingleDayRange(t *testing.T) {
	start := date(2025, time.June, 10)
	days := newTestBuilder(1).Build("", start, start)
	require.Len(t, days, 1)
}

func TestBuildKeepsRichDays(t *testing.T) {
	doc := "Day 1: Old town\n" +
		"9:00 AM Charminar monument tour\nCost: ₹250\n" +
		"11:00 AM Lunch break, restaurant stop with local food\n" +
		"2:00 PM Walk through Lumbini Park for 3 hours\n"

	start := date(2025, time.March, 30)
	days := newTestBuilder(1).Build(doc, start, start.AddDate(0, 0, 1))

	require.Len(t, days, 2)

	// Day one extracted three activities and keeps them untouched.
	day1 := days[0]
	require.Len(t, day1.Activities, 3)

	first := day1.Activities[0]
	assert.Equal(t, "9:00 AM", first.Time)
	assert.Equal(t, "Charminar", first.Location)
	require.NotNil(t, first.Coordinates)
	assert.InDelta(t, 17.3616, first.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 78.4747, first.Coordinates.Lon, 1e-9)
	assert.Equal(t, 250, first.Cost)

	second := day1.Activities[1]
	assert.Contains(t, second.Tags, "food")
	assert.Equal(t, 500, second.Cost)

	third := day1.Activities[2]
	assert.Equal(t, "3 hours", third.Duration)
	assert.Contains(t, third.Tags, "hiking")
	assert.Contains(t, third.Tags, "nature")
	assert.Equal(t, "Lumbini Park", third.Location)

	// Day two has no source text and is template-backfilled.
	assert.Len(t, days[1].Activities, 5)
}

func TestBuildReplacesThinDays(t *testing.T) {
	doc := "Day 1: Thin day\n9:00 AM One lonely stop\n"

	days := newTestBuilder(1).Build(doc, date(2025, time.March, 30), date(2025, time.March, 30))

	require.Len(t, days, 1)
	// Below the minimum, the extracted activity is discarded and a full
	// template day takes its place.
	assert.Len(t, days[0].Activities, 5)
	for _, act := range days[0].Activities {
		assert.Contains(t, act.Tags, "sustainable")
	}
}

func TestBuildCoordinatesComeFromGazetteer(t *testing.T) {
	profile := HyderabadProfile()
	b := NewBuilder(profile, rand.New(rand.NewSource(7)))

	docs := []string{
		"",
		"random text without structure",
		"Day 1: mixed\n9:00 AM Visit somewhere unknown\n10:30 Golconda Fort tour\n12:00 lunch\n",
		profile.CuratedDocument,
	}

	for _, doc := range docs {
		for _, day := range b.Build(doc, date(2025, time.March, 30), date(2025, time.April, 3)) {
			for _, act := range day.Activities {
				if act.Coordinates != nil {
					assert.True(t, profile.RegisteredCoordinate(*act.Coordinates),
						"unregistered coordinate %v for %q", *act.Coordinates, act.Title)
				}
			}
		}
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	doc := "no structure here"
	start, end := date(2025, time.March, 30), date(2025, time.April, 1)

	a := newTestBuilder(42).Build(doc, start, end)
	b := newTestBuilder(42).Build(doc, start, end)

	assert.Equal(t, a, b)
}

func TestCuratedDocumentFidelity(t *testing.T) {
	profile := HyderabadProfile()
	b := NewBuilder(profile, rand.New(rand.NewSource(1)))

	days := b.Build(profile.CuratedDocument, date(2025, time.March, 30), date(2025, time.April, 3))

	require.Len(t, days, 5)
	assert.Equal(t, "March 30, 2025 – Old City & Heritage Walk", days[0].Title)
	assert.Equal(t, date(2025, time.March, 30), days[0].Date)
	assert.Equal(t, date(2025, time.April, 3), days[4].Date)

	first := days[0].Activities[0]
	assert.Equal(t, "9:00 AM", first.Time)
	assert.Equal(t, "Charminar & Breakfast at Nimrah Café", first.Title)
	assert.Equal(t, "Nimrah Café", first.Location)
	require.NotNil(t, first.Coordinates)
	assert.InDelta(t, 17.3616, first.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 78.4747, first.Coordinates.Lon, 1e-9)
	assert.Equal(t, 100, first.Cost)
	assert.Equal(t, TransportWalk, first.TransportMode)
	assert.Equal(t, []string{"sustainable", "walk"}, first.Tags)

	// Day two is the cycling day.
	for _, act := range days[1].Activities {
		assert.Equal(t, TransportBike, act.TransportMode)
	}

	// Every curated activity resolves to a known landmark coordinate.
	for _, day := range days {
		require.NotEmpty(t, day.Activities)
		for _, act := range day.Activities {
			require.NotNil(t, act.Coordinates, "activity %q", act.Title)
			assert.True(t, profile.RegisteredCoordinate(*act.Coordinates))
		}
	}
}

func TestBuildCuratedMatchesFingerprintPath(t *testing.T) {
	profile := HyderabadProfile()
	b := NewBuilder(profile, rand.New(rand.NewSource(1)))
	start := date(2025, time.March, 30)

	explicit := b.BuildCurated(start)
	sniffed := b.Build(profile.CuratedDocument, start, start.AddDate(0, 0, 4))

	assert.Equal(t, explicit, sniffed)
}

func TestBuildCuratedIdempotent(t *testing.T) {
	b := NewBuilder(HyderabadProfile(), rand.New(rand.NewSource(1)))
	start := date(2025, time.March, 30)

	assert.Equal(t, b.BuildCurated(start), b.BuildCurated(start))
}

func TestMatchesCurated(t *testing.T) {
	profile := HyderabadProfile()

	assert.True(t, profile.MatchesCurated(profile.CuratedDocument))
	assert.False(t, profile.MatchesCurated("Day 1: A trip mentioning Charminar only"))
	assert.False(t, profile.MatchesCurated(""))
}
