package services

import (
	"time"

	"fueltrack-api/models"
)

// The engine services query the record store through these narrow
// interfaces rather than holding a *gorm.DB, so tests can substitute
// in-memory fixtures. The gorm-backed implementations live in repositories/.

// TripPointStore is the per-user GPS point store. Lookups that find nothing
// return (nil, nil); an error always means a store fault.
type TripPointStore interface {
	// Insert persists the point atomically with its assigned odometer.
	Insert(point *models.TripPoint) error
	// Latest returns the most recent point by trip date.
	Latest(userID string) (*models.TripPoint, error)
	// Recent returns up to limit points, newest first.
	Recent(userID string, limit int) ([]models.TripPoint, error)
	// Window returns points with trip date in [from, to], oldest first.
	Window(userID string, from, to time.Time) ([]models.TripPoint, error)
}

// FillUpStore is the per-user fill-up history store.
type FillUpStore interface {
	// ByOdometerAsc returns all fill-ups ordered by odometer, lowest first.
	ByOdometerAsc(userID string) ([]models.FillUp, error)
	// ByDateAsc returns all fill-ups ordered by date, oldest first.
	ByDateAsc(userID string) ([]models.FillUp, error)
	// LatestByOdometer returns the fill-up with the highest odometer, or nil.
	LatestByOdometer(userID string) (*models.FillUp, error)
	// PreviousByOdometer returns the closest fill-up strictly below the given
	// odometer reading, or nil.
	PreviousByOdometer(userID string, odometerKm float64) (*models.FillUp, error)
}

// VehicleStore resolves the per-user vehicle profile.
type VehicleStore interface {
	// GetOrCreate returns the user's vehicle, creating one with defaults on
	// first access.
	GetOrCreate(userID string) (*models.Vehicle, error)
}
