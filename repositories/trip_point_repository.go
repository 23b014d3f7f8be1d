package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fueltrack-api/models"
)

type TripPointRepository struct {
	db *gorm.DB
}

func NewTripPointRepository(db *gorm.DB) *TripPointRepository {
	return &TripPointRepository{db: db}
}

// Insert persists a new GPS point. The insert is a single row, so it either
// fully records the point with its odometer or fails without side effects.
func (r *TripPointRepository) Insert(point *models.TripPoint) error {
	return r.db.Create(point).Error
}

// Latest returns the user's most recent point by trip date, or nil.
func (r *TripPointRepository) Latest(userID string) (*models.TripPoint, error) {
	var point models.TripPoint
	err := r.db.Where("user_id = ?", userID).Order("trip_date DESC").First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// Recent returns up to limit points, newest first.
func (r *TripPointRepository) Recent(userID string, limit int) ([]models.TripPoint, error) {
	var points []models.TripPoint
	err := r.db.Where("user_id = ?", userID).
		Order("trip_date DESC").
		Limit(limit).
		Find(&points).Error
	return points, err
}

// Window returns points with trip date in [from, to], oldest first.
func (r *TripPointRepository) Window(userID string, from, to time.Time) ([]models.TripPoint, error) {
	var points []models.TripPoint
	err := r.db.Where("user_id = ? AND trip_date >= ? AND trip_date <= ?", userID, from, to).
		Order("trip_date ASC").
		Find(&points).Error
	return points, err
}

// DeleteOlderThan removes points captured before the cutoff and returns how
// many were removed. Odometer continuity is unaffected: accumulation only
// ever reads the latest stored point.
func (r *TripPointRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("trip_date < ?", cutoff).Delete(&models.TripPoint{})
	return result.RowsAffected, result.Error
}

// DeleteByUser removes all of a user's points.
func (r *TripPointRepository) DeleteByUser(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ?", userID).Delete(&models.TripPoint{}).Error
}

// CountByUser returns the number of stored points for a user.
func (r *TripPointRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TripPoint{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
