package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fueltrack-api/models"
)

type FillUpRepository struct {
	db *gorm.DB
}

func NewFillUpRepository(db *gorm.DB) *FillUpRepository {
	return &FillUpRepository{db: db}
}

func (r *FillUpRepository) Create(fillup *models.FillUp) error {
	return r.db.Create(fillup).Error
}

// ByID returns a fill-up scoped to its owner, or nil when absent.
func (r *FillUpRepository) ByID(id, userID string) (*models.FillUp, error) {
	var fillup models.FillUp
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&fillup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fillup, nil
}

func (r *FillUpRepository) Delete(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FillUp{}).Error
}

// ByOdometerAsc returns all of a user's fill-ups ordered by odometer.
func (r *FillUpRepository) ByOdometerAsc(userID string) ([]models.FillUp, error) {
	var fillups []models.FillUp
	err := r.db.Where("user_id = ?", userID).Order("odometer_km ASC").Find(&fillups).Error
	return fillups, err
}

// ByDateAsc returns all of a user's fill-ups ordered by date.
func (r *FillUpRepository) ByDateAsc(userID string) ([]models.FillUp, error) {
	var fillups []models.FillUp
	err := r.db.Where("user_id = ?", userID).Order("date ASC").Find(&fillups).Error
	return fillups, err
}

// LatestByOdometer returns the fill-up with the highest odometer, or nil.
func (r *FillUpRepository) LatestByOdometer(userID string) (*models.FillUp, error) {
	var fillup models.FillUp
	err := r.db.Where("user_id = ?", userID).Order("odometer_km DESC").First(&fillup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fillup, nil
}

// PreviousByOdometer returns the closest fill-up strictly below the given
// odometer reading, or nil.
func (r *FillUpRepository) PreviousByOdometer(userID string, odometerKm float64) (*models.FillUp, error) {
	var fillup models.FillUp
	err := r.db.Where("user_id = ? AND odometer_km < ?", userID, odometerKm).
		Order("odometer_km DESC").
		First(&fillup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fillup, nil
}

// DeleteByUser removes all of a user's fill-ups.
func (r *FillUpRepository) DeleteByUser(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ?", userID).Delete(&models.FillUp{}).Error
}

// CountByUser returns the number of fill-ups recorded by a user.
func (r *FillUpRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FillUp{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
