package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fueltrack-api/models"
)

type VehicleRepository struct {
	db              *gorm.DB
	defaultCapacity float64
}

func NewVehicleRepository(db *gorm.DB, defaultCapacity float64) *VehicleRepository {
	return &VehicleRepository{db: db, defaultCapacity: defaultCapacity}
}

// GetOrCreate returns the user's vehicle profile, lazily creating one with
// the default capacity on first access.
func (r *VehicleRepository) GetOrCreate(userID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Where("user_id = ?", userID).First(&vehicle).Error
	if err == nil {
		return &vehicle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle = models.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               "My Vehicle",
		TankCapacityLiters: r.defaultCapacity,
		FuelType:           "Petrol",
	}
	if err := r.db.Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Update persists new settings for an existing vehicle.
func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Model(vehicle).Updates(map[string]interface{}{
		"name":                 vehicle.Name,
		"tank_capacity_liters": vehicle.TankCapacityLiters,
		"fuel_type":            vehicle.FuelType,
		"updated_at":           time.Now(),
	}).Error
}

// DeleteByUser removes a user's vehicle profile.
func (r *VehicleRepository) DeleteByUser(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ?", userID).Delete(&models.Vehicle{}).Error
}
