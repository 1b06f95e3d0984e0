package itinerary

import "strings"

// Profile bundles the per-city configuration the parser consumes: the
// gazetteer, the city-center fallback, and (optionally) a curated template
// document with its own richer landmark lookup. The parser never mutates a
// profile, so a single instance is safe for concurrent use.
type Profile struct {
	ID   string
	City string

	// Landmarks is the gazetteer scanned during free-form extraction and
	// drawn from during backfill. Iteration order is match priority.
	Landmarks []Landmark

	// CuratedLandmarks is the wider, ordered lookup used only by the
	// curated-template parser.
	CuratedLandmarks []Landmark

	// CityCenter is the coordinate assigned when no landmark matches on the
	// free-form path. It counts as a registered gazetteer entry.
	CityCenter Landmark

	// DayFallbacks names one curated landmark per day index, used when an
	// activity in the curated document resolves to no landmark at all.
	DayFallbacks []string

	// Fingerprints identify the curated template document; a document
	// containing every fingerprint takes the structured parsing path.
	Fingerprints []string

	// CuratedDocument is the fully authored template itinerary for this city.
	CuratedDocument string
}

// MatchesCurated reports whether doc is this profile's curated template
// document. Arbitrary model output never matches: every fingerprint has to
// be present.
func (p *Profile) MatchesCurated(doc string) bool {
	if len(p.Fingerprints) == 0 {
		return false
	}
	for _, fp := range p.Fingerprints {
		if !strings.Contains(doc, fp) {
			return false
		}
	}
	return true
}

func (p *Profile) curatedByName(name string) (Landmark, bool) {
	for _, lm := range p.CuratedLandmarks {
		if lm.Name == name {
			return lm, true
		}
	}
	return Landmark{}, false
}

// RegisteredCoordinate reports whether c equals some landmark coordinate
// known to this profile. The parser never invents coordinates, so every
// non-nil activity coordinate satisfies this.
func (p *Profile) RegisteredCoordinate(c LatLon) bool {
	if c == p.CityCenter.Coordinates {
		return true
	}
	for _, lm := range p.Landmarks {
		if lm.Coordinates == c {
			return true
		}
	}
	for _, lm := range p.CuratedLandmarks {
		if lm.Coordinates == c {
			return true
		}
	}
	return false
}
