package response_models

type NearbyStop struct {
	StopID     string  `json:"stop_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}

type TransitRouteResponse struct {
	RouteID         string  `json:"route_id"`
	RouteName       string  `json:"route_name"`
	FromStop        string  `json:"from_stop"`
	ToStop          string  `json:"to_stop"`
	DistanceKm      float64 `json:"distance_km"`
	FareRupees      int     `json:"fare_rupees"`
	DurationMinutes int     `json:"duration_minutes"`
}

type TransportOption struct {
	Type            string       `json:"type"`
	Operator        string       `json:"operator,omitempty"`
	Departure       string       `json:"departure,omitempty"`
	Arrival         string       `json:"arrival,omitempty"`
	Duration        string       `json:"duration"`
	CarbonFootprint float64      `json:"carbon_footprint"`
	Price           string       `json:"price"`
	Route           string       `json:"route"`
	MapPath         [][2]float64 `json:"map_path"`
}

type CarbonFootprintResponse struct {
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	CarbonKg   float64 `json:"carbon_kg"`
	SavedKg    float64 `json:"saved_kg"` // versus driving the same distance
}
