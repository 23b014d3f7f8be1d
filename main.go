package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"fueltrack-api/config"
	"fueltrack-api/database"
	"fueltrack-api/jobs"
	"fueltrack-api/middleware"
	"fueltrack-api/repositories"
	"fueltrack-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with demo data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS and security headers
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Prune aged GPS points in the background
	retentionJob := jobs.NewPointRetentionJob(
		repositories.NewTripPointRepository(db),
		cfg.Engine.PointRetentionDays,
		24*time.Hour,
	)
	retentionJob.Start()
	defer retentionJob.Stop()

	// Start server
	log.Printf("Starting FuelTrack API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
