package itinerary

import (
	"regexp"
	"strings"
)

var (
	dayHeadingRe = regexp.MustCompile(`Day \d+:`)
	timeTokenRe  = regexp.MustCompile(`(?i)\d{1,2}:\d{2}(?:\s?[AP]M)?`)
)

// splitDays cuts a raw document into per-day blocks on "Day <n>:" headings.
// A document without headings comes back as a single block, which routes the
// whole text through generic activity extraction. Malformed input degrades to
// fewer blocks, never to an error.
func splitDays(doc string) []string {
	blocks := dayHeadingRe.Split(doc, -1)
	if len(blocks) > 0 && strings.TrimSpace(blocks[0]) == "" {
		blocks = blocks[1:]
	}
	return blocks
}

// splitActivities cuts one day block into activity chunks, each starting at a
// time-of-day token. Text before the first token is heading noise and is
// dropped. No tokens means no extractable activities.
func splitActivities(dayText string) []string {
	locs := timeTokenRe.FindAllStringIndex(dayText, -1)
	if len(locs) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(dayText)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := strings.TrimSpace(dayText[loc[0]:end])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
