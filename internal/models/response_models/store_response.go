package response_models

type ProductResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	PointsCost           int    `json:"points_cost"`
	Category             string `json:"category"`
	ImageURL             string `json:"image_url"`
	Stock                int    `json:"stock"`
	SustainabilityRating int    `json:"sustainability_rating"`
	Featured             bool   `json:"featured"`
}

type RedemptionResponse struct {
	ID          string          `json:"id"`
	Product     ProductResponse `json:"product"`
	PointsSpent int             `json:"points_spent"`
	RedeemedAt  int64           `json:"redeemed_at"`
}
