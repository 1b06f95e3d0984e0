package request_models

type PlanTripRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=100"`
	Location    string   `json:"location" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Preferences []string `json:"preferences"`
	TravelType  string   `json:"travel_type"`
	Budget      int      `json:"budget"`
	Travelers   int      `json:"travelers"`
}
