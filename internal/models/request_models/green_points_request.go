package request_models

type EarnGreenPointsRequest struct {
	Points int    `json:"points" binding:"required,gt=0"`
	Reason string `json:"reason"`
}

type RedeemProductRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}
