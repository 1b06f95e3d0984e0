package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	titleRe    = regexp.MustCompile(`^(.+?)(?:\n|Visit|Explore|\bat\b|\bin\b)`)
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*(hour|hr|minute|min)`)
	costRe     = regexp.MustCompile(`(?i)(?:₹|Rs\.?|Rupees?)\s*(\d+)`)
)

// tagKeywords maps category tags to the keywords that imply them. Unlike the
// other fields, tagging is not first-match-wins: every matching category is
// attached.
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"hiking", []string{"hike", "walk", "trek"}},
	{"food", []string{"food", "eat", "restaurant"}},
	{"cultural", []string{"museum", "heritage", "historical"}},
	{"nature", []string{"park", "garden", "lake"}},
}

// transportMarkers is the fixed priority order for deriving a day's transport
// mode from symbolic markers anywhere in the day text.
var transportMarkers = []struct {
	marker string
	mode   TransportMode
}{
	{"🚶", TransportWalk},
	{"🚲", TransportBike},
	{"🚴", TransportBike},
	{"🚌", TransportBus},
	{"🚋", TransportTrain},
}

// extractActivity pulls one activity out of a free-form text chunk. Every
// extraction step is independent and best-effort: a miss leaves the field at
// its default, and the function cannot fail.
func extractActivity(chunk string, mode TransportMode, profile *Profile) Activity {
	activity := Activity{
		Time:          "12:00",
		Title:         "Explore Local Attraction",
		Description:   "Visit a local attraction and explore the area",
		Location:      profile.CityCenter.Name,
		Coordinates:   &LatLon{Lat: profile.CityCenter.Coordinates.Lat, Lon: profile.CityCenter.Coordinates.Lon},
		Duration:      "2 hours",
		Cost:          500,
		TransportMode: mode,
	}

	if m := timeTokenRe.FindString(chunk); m != "" {
		activity.Time = m
	}

	if m := titleRe.FindStringSubmatch(chunk); m != nil {
		title := strings.TrimSpace(m[1])
		// Candidates past 100 characters are non-title noise.
		if title != "" && len(title) < 100 {
			activity.Title = title
		}
	}

	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) > 1 {
		desc := strings.Join(lines[1:], " ")
		if len(desc) > 200 {
			desc = desc[:200]
		}
		activity.Description = desc
	}

	for _, lm := range profile.Landmarks {
		if strings.Contains(chunk, lm.Name) {
			activity.Location = lm.Name
			activity.Coordinates = &LatLon{Lat: lm.Coordinates.Lat, Lon: lm.Coordinates.Lon}
			break
		}
	}

	if m := durationRe.FindStringSubmatch(chunk); m != nil {
		unit := "minutes"
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			unit = "hours"
		}
		activity.Duration = m[1] + " " + unit
	}

	if m := costRe.FindStringSubmatch(chunk); m != nil {
		if cost, err := strconv.Atoi(m[1]); err == nil {
			activity.Cost = cost
		}
	}

	activity.Tags = deriveTags(chunk)

	return activity
}

func deriveTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, kw := range tagKeywords {
		for _, word := range kw.keywords {
			if strings.Contains(lower, word) {
				tags = append(tags, kw.tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		tags = []string{"sightseeing"}
	}
	return tags
}

// deriveTransport classifies a whole day's transport mode from the first
// matching marker in priority order.
func deriveTransport(dayText string) TransportMode {
	for _, tm := range transportMarkers {
		if strings.Contains(dayText, tm.marker) {
			return tm.mode
		}
	}
	return TransportOther
}
