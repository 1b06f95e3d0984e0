package response_models

type TripResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Status      string         `json:"status"`
	TravelType  string         `json:"travel_type,omitempty"`
	Travelers   int            `json:"travelers"`
	Budget      int            `json:"budget"`
	CarbonSaved int            `json:"carbon_saved"`
	ImageURL    string         `json:"image_url"`
	MapCenter   *MapCoordinate `json:"map_center,omitempty"`
}

type TripDetailResponse struct {
	TripResponse
	Days           []TripDayResponse `json:"days"`
	MapCoordinates []MapCoordinate   `json:"map_coordinates"`
}

type TripDayResponse struct {
	Day           int                `json:"day"`
	Title         string             `json:"title"`
	Date          string             `json:"date"`
	TransportMode string             `json:"transport_mode"`
	Activities    []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	Time          string         `json:"time"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	Coordinates   *MapCoordinate `json:"coordinates,omitempty"`
	Duration      string         `json:"duration"`
	Cost          int            `json:"cost"`
	Tags          []string       `json:"tags"`
	TransportMode string         `json:"transport_mode"`
}

type MapCoordinate struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
