package db_fx

import (
	"greenway/internal/infra"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrateAndSeed))

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func migrateAndSeed(db *gorm.DB) {
	infra.AutoMigrate(db)
	infra.SeedDemoData(db)
}
