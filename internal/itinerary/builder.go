package itinerary

import (
	"fmt"
	"math/rand"
	"time"
)

// Builder turns raw itinerary text into ordered day records for a date range.
// It holds no state across Build calls beyond the read-only profile; the
// random source drives backfill variety and is injected so callers (and
// tests) control determinism.
type Builder struct {
	profile *Profile
	rng     *rand.Rand
}

func NewBuilder(profile *Profile, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{profile: profile, rng: rng}
}

func (b *Builder) Profile() *Profile {
	return b.profile
}

// Build is the sole public entry point for free-form documents. For any input
// string and any date pair with end >= start it returns exactly
// daysBetween(start,end)+1 days, dates contiguous from start, every day
// carrying at least three activities. It never fails: structure-free input
// yields a fully template-backfilled itinerary spanning the range.
//
// The profile's curated template document takes a dedicated structured
// parsing path so that document renders with full fidelity; arbitrary
// documents never take it.
func (b *Builder) Build(doc string, start, end time.Time) []Day {
	if end.Before(start) {
		end = start
	}
	duration := daysBetween(start, end) + 1

	if b.profile.MatchesCurated(doc) {
		return b.buildCurated(doc, start)
	}

	blocks := splitDays(doc)

	days := make([]Day, 0, duration)
	for i := 0; i < duration; i++ {
		date := start.AddDate(0, 0, i)

		var activities []Activity
		mode := TransportOther
		if i < len(blocks) {
			mode = deriveTransport(blocks[i])
			for _, chunk := range splitActivities(blocks[i]) {
				activities = append(activities, extractActivity(chunk, mode, b.profile))
			}
		}

		activities = backfillDay(i, activities, mode, b.profile, b.rng)

		days = append(days, Day{
			Index:      i + 1,
			Title:      fmt.Sprintf("Day %d in %s", i+1, b.profile.City),
			Date:       date,
			Activities: activities,
		})
	}

	return days
}

// BuildCurated parses the profile's curated template document directly,
// stitching dates from start. Callers that selected the curated template
// themselves use this instead of relying on fingerprint detection.
func (b *Builder) BuildCurated(start time.Time) []Day {
	return b.buildCurated(b.profile.CuratedDocument, start)
}

func daysBetween(start, end time.Time) int {
	const day = 24 * time.Hour
	return int(end.Truncate(day).Sub(start.Truncate(day)) / day)
}
