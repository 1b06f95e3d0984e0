package infra

import (
	"log"

	"greenway/internal/models/db_models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.TripDay{},
		&db_models.TripActivity{},
		&db_models.Product{},
		&db_models.Redemption{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}
