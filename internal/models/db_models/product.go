package db_models

type Product struct {
	BaseModel
	Name                 string
	Description          string
	PointsCost           int
	Category             string
	ImageURL             string
	Stock                int
	SustainabilityRating int
	Featured             bool
}
