package itinerary

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	meridiemTimeRe = regexp.MustCompile(`\d{1,2}:\d{2} [AP]M`)
	rupeeAmountRe  = regexp.MustCompile(`₹(\d+)`)
)

// buildCurated parses the curated template document: explicit per-day
// transport and cost header lines, meridiem time separators, emoji-decorated
// activity titles. Dates come from the requested start date, not from the
// literal dates inside the document.
func (b *Builder) buildCurated(doc string, start time.Time) []Day {
	blocks := splitDays(doc)

	days := make([]Day, 0, len(blocks))
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		title := strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
		mode := deriveTransport(block)

		var activities []Activity
		for _, chunk := range splitCuratedActivities(block) {
			activities = append(activities, b.parseCuratedActivity(chunk, i, mode))
		}

		days = append(days, Day{
			Index:      i + 1,
			Title:      title,
			Date:       start.AddDate(0, 0, i),
			Activities: activities,
		})
	}
	return days
}

// splitCuratedActivities cuts a curated day block at "H:MM AM/PM" tokens,
// keeping each token at the head of its chunk. The day heading and the
// transport/cost header lines precede the first token and fall away.
func splitCuratedActivities(block string) []string {
	locs := meridiemTimeRe.FindAllStringIndex(block, -1)
	chunks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(block)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := strings.TrimSpace(block[loc[0]:end])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

func (b *Builder) parseCuratedActivity(chunk string, dayIdx int, mode TransportMode) Activity {
	activityTime := meridiemTimeRe.FindString(chunk)
	rest := strings.TrimSpace(strings.TrimPrefix(chunk, activityTime))

	lines := strings.Split(rest, "\n")
	title := stripDecorations(strings.TrimPrefix(strings.TrimSpace(lines[0]), "– "))

	var description, location string
	cost := 0
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.Contains(line, "Mode of Transport") || strings.Contains(line, "Estimated Cost"):
			continue
		case strings.Contains(line, "Cost:"):
			if m := rupeeAmountRe.FindStringSubmatch(line); m != nil {
				cost, _ = strconv.Atoi(m[1])
			}
		case description == "":
			description = line
		case location == "" && strings.Contains(line, " at "):
			location = strings.TrimSpace(line[strings.Index(line, " at ")+4:])
		default:
			description += " " + line
		}
	}
	if description == "" {
		description = title
	}

	if location == "" {
		if idx := strings.Index(title, " at "); idx >= 0 {
			location = strings.TrimSpace(title[idx+4:])
		} else if lm, ok := b.curatedLandmarkIn(title); ok {
			location = lm.Name
		} else {
			location = strings.TrimSpace(strings.SplitN(title, "&", 2)[0])
		}
	}

	var coordinates *LatLon
	if lm, ok := b.curatedLandmarkIn(title + " " + location); ok {
		coordinates = &LatLon{Lat: lm.Coordinates.Lat, Lon: lm.Coordinates.Lon}
	}

	// Activities that resolve to no landmark pin to a fixed per-day fallback
	// so every activity stays mappable.
	if coordinates == nil && len(b.profile.DayFallbacks) > 0 {
		idx := dayIdx
		if idx >= len(b.profile.DayFallbacks) {
			idx = len(b.profile.DayFallbacks) - 1
		}
		if lm, ok := b.profile.curatedByName(b.profile.DayFallbacks[idx]); ok {
			coordinates = &LatLon{Lat: lm.Coordinates.Lat, Lon: lm.Coordinates.Lon}
			if location == "" {
				location = lm.Name
			}
		}
	}

	return Activity{
		Time:          activityTime,
		Title:         title,
		Description:   description,
		Location:      location,
		Coordinates:   coordinates,
		Duration:      "2 hours",
		Cost:          cost,
		Tags:          []string{"sustainable", string(mode)},
		TransportMode: mode,
	}
}

func (b *Builder) curatedLandmarkIn(text string) (Landmark, bool) {
	for _, lm := range b.profile.CuratedLandmarks {
		if strings.Contains(text, lm.Name) {
			return lm, true
		}
	}
	return Landmark{}, false
}

// stripDecorations drops emoji and pictographic symbols from a title line,
// keeping regular punctuation (including the en dash and the rupee sign).
func stripDecorations(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 0x1F000:
			continue
		case r >= 0x2600 && r <= 0x27BF:
			continue
		case r == 0xFE0F:
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
