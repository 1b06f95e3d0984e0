package db_models

import "github.com/google/uuid"

type Redemption struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	PointsSpent int
	Product     Product
}
