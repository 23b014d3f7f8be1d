package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fueltrack-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.FillUp{},
		&models.TripPoint{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Fill-up lookups are always per-user and ordered by odometer or date.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_fill_ups_user_odometer ON fill_ups(user_id, odometer_km)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for fill_ups odometer: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_fill_ups_user_date ON fill_ups(user_id, date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for fill_ups date: %v\n", err)
	}

	// Trip points are fetched per-user newest-first, and by time window.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trip_points_user_date ON trip_points(user_id, trip_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trip_points: %v\n", err)
	}

	return nil
}

// SeedData populates the database with a demo user and a short fill-up
// history for development. Skips seeding when users already exist.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:            uuid.New().String(),
		LicenseNumber: "1234ABC",
		Password:      string(hash),
		IsAdmin:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		fmt.Printf("Warning: Could not create demo user: %v\n", err)
		return nil
	}

	vehicle := models.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             user.ID,
		Name:               "Demo Sedan",
		TankCapacityLiters: 50.0,
		FuelType:           "Petrol",
	}
	if err := db.Create(&vehicle).Error; err != nil {
		fmt.Printf("Warning: Could not create demo vehicle: %v\n", err)
	}

	now := time.Now()
	demoFills := []models.FillUp{
		{
			ID:            uuid.New().String(),
			UserID:        user.ID,
			Date:          now.AddDate(0, 0, -21),
			OdometerKm:    12000,
			FuelLiters:    42,
			IsFullTank:    true,
			PricePerLiter: 2560,
			TotalCost:     42 * 2560,
			Notes:         "Seeded demo data",
		},
		{
			ID:            uuid.New().String(),
			UserID:        user.ID,
			Date:          now.AddDate(0, 0, -10),
			OdometerKm:    12480,
			FuelLiters:    38.5,
			IsFullTank:    true,
			PricePerLiter: 2610,
			TotalCost:     38.5 * 2610,
		},
		{
			ID:            uuid.New().String(),
			UserID:        user.ID,
			Date:          now.AddDate(0, 0, -2),
			OdometerKm:    12910,
			FuelLiters:    35,
			IsFullTank:    true,
			PricePerLiter: 2585,
			TotalCost:     35 * 2585,
		},
	}
	for _, fill := range demoFills {
		if err := db.Create(&fill).Error; err != nil {
			fmt.Printf("Warning: Could not create demo fill-up: %v\n", err)
		}
	}

	fmt.Println("Database seeded with demo user and fill-up history")
	return nil
}
