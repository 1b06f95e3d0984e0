package itinerary

import "time"

// TransportMode is the per-day transport classification attached to every
// activity extracted from that day.
type TransportMode string

const (
	TransportWalk  TransportMode = "walk"
	TransportBike  TransportMode = "bike"
	TransportBus   TransportMode = "bus"
	TransportTrain TransportMode = "train"
	TransportCar   TransportMode = "car"
	TransportOther TransportMode = "other"
)

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Landmark is one gazetteer entry. Names are unique within a profile and
// coordinates are valid WGS84.
type Landmark struct {
	Name        string
	Coordinates LatLon
}

// Activity is the extraction output unit. Every field has a default, so an
// Activity is always fully populated regardless of how little the source
// text matched.
type Activity struct {
	Time          string        `json:"time"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	Coordinates   *LatLon       `json:"coordinates,omitempty"`
	Duration      string        `json:"duration"`
	Cost          int           `json:"cost"`
	Tags          []string      `json:"tags"`
	TransportMode TransportMode `json:"transport_mode"`
}

// Day is one itinerary day. After backfill a day always carries at least
// three activities and its date equals trip start + (Index-1) days.
type Day struct {
	Index      int        `json:"day"`
	Title      string     `json:"title"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
