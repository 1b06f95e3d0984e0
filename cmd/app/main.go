package main

import (
	"context"
	"log"
	"os"

	"greenway/cmd/fx/account_fx"
	"greenway/cmd/fx/airquality_fx"
	"greenway/cmd/fx/controllers_fx"
	"greenway/cmd/fx/db_fx"
	"greenway/cmd/fx/itinerary_fx"
	"greenway/cmd/fx/logger_fx"
	"greenway/cmd/fx/planner_fx"
	"greenway/cmd/fx/store_fx"
	"greenway/cmd/fx/transit_fx"
	"greenway/cmd/fx/trip_fx"
	"greenway/internal/api/controllers"
	"greenway/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		planner_fx.Module,
		transit_fx.Module,
		airquality_fx.Module,
		store_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	transitController *controllers.TransitController,
	airQualityController *controllers.AirQualityController,
	storeController *controllers.StoreController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, transitController, airQualityController, storeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	transitController *controllers.TransitController,
	airQualityController *controllers.AirQualityController,
	storeController *controllers.StoreController) {

	accounts := r.Group("/accounts")
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Profile)
	accounts.POST("/green-score/earn", middleware.JWTAuthMiddleware(), accountController.EarnGreenPoints)

	trips := r.Group("/trips", middleware.JWTAuthMiddleware())
	// LLM calls are slow and metered, keep the planning rate low
	trips.POST("/plan", middleware.RateLimitMiddleware(rate.Limit(0.2), 3), tripController.PlanTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:id", tripController.TripDetails)

	transit := r.Group("/transit")
	transit.GET("/stops", transitController.NearbyStops)
	transit.GET("/route", transitController.BestRoute)
	transit.GET("/options", transitController.TransportOptions)
	transit.GET("/carbon", transitController.CarbonFootprint)

	r.GET("/air-quality", airQualityController.ForLocation)

	store := r.Group("/store")
	store.GET("/products", storeController.ListProducts)
	store.GET("/products/featured", storeController.FeaturedProducts)
	store.POST("/redeem", middleware.JWTAuthMiddleware(), storeController.Redeem)
	store.GET("/redemptions", middleware.JWTAuthMiddleware(), storeController.Redemptions)
}
