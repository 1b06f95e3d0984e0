package store_fx

import (
	"greenway/internal/repositories"
	"greenway/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideStoreService, provideStoreRepo)

func provideStoreRepo(db *gorm.DB) repositories.StoreRepository {
	return repositories.NewStoreRepository(db)
}

func provideStoreService(storeRepo repositories.StoreRepository) services.StoreServiceInterface {
	return services.NewStoreService(storeRepo)
}
