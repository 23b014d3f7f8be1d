package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltrack-api/config"
	"fueltrack-api/controllers"
	"fueltrack-api/middleware"
	"fueltrack-api/repositories"
	"fueltrack-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	pointRepo := repositories.NewTripPointRepository(db)
	fillupRepo := repositories.NewFillUpRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db, cfg.Engine.DefaultTankCapacity)

	// Services
	locationService := services.NewLocationService(pointRepo, cfg.Engine)
	tripService := services.NewTripService(pointRepo, fillupRepo, cfg.Engine)
	fuelService := services.NewFuelService(fillupRepo, pointRepo, vehicleRepo, cfg.Engine)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, vehicleRepo)
	locationController := controllers.NewLocationController(locationService)
	tripController := controllers.NewTripController(tripService)
	fuelController := controllers.NewFuelController(fuelService)
	fillupController := controllers.NewFillUpController(fillupRepo, vehicleRepo, fuelService)
	vehicleController := controllers.NewVehicleController(vehicleRepo)
	adminController := controllers.NewAdminController(db, fillupRepo, pointRepo, vehicleRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Location routes. Ingestion is rate-limited per user, which also
		// keeps one device's reports effectively serialized.
		locations := protected.Group("/locations")
		{
			locations.POST("", middleware.RateLimit(60, 10), locationController.SaveLocation)
			locations.GET("", locationController.GetLocations)
		}

		// Trip routes
		trips := protected.Group("/trips")
		{
			trips.GET("/stats", tripController.GetStats)
		}

		// Fuel routes
		fuel := protected.Group("/fuel")
		{
			fuel.GET("/status", fuelController.GetStatus)
			fuel.GET("/efficiency", fuelController.GetEfficiency)
			fuel.GET("/idle-rate", fuelController.GetIdleRate)
			fuel.POST("/predict-range", fuelController.PredictRange)
		}

		// Fill-up routes
		fillups := protected.Group("/fillups")
		{
			fillups.POST("", fillupController.AddFillUp)
			fillups.GET("", fillupController.GetHistory)
			fillups.GET("/last", fillupController.GetLastFillUp)
			fillups.GET("/summary", fillupController.GetSummary)
			fillups.DELETE("/:id", fillupController.DeleteFillUp)
		}

		// Vehicle routes
		vehicle := protected.Group("/vehicle")
		{
			vehicle.GET("", vehicleController.GetVehicle)
			vehicle.PUT("", vehicleController.UpdateVehicle)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/users", adminController.ListUsers)
			admin.PUT("/users/:id/toggle-admin", adminController.ToggleAdmin)
			admin.PUT("/users/:id/reset-password", adminController.ResetPassword)
			admin.DELETE("/users/:id", adminController.DeleteUser)
		}
	}
}

// SetupCORS allows browser clients (the PWA frontend) to talk to the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
