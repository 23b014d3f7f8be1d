package models

import (
	"time"
)

// TripPoint is a single GPS fix. The odometer value is computed once at
// insert time from the previous stored point and never recomputed; within a
// user's time-ordered sequence it is non-decreasing.
type TripPoint struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	UserID     string    `json:"user_id" gorm:"not null;index;size:191"`
	Latitude   float64   `json:"lat" gorm:"not null"`
	Longitude  float64   `json:"lon" gorm:"not null"`
	Accuracy   *float64  `json:"accuracy"` // meters, optional
	TripDate   time.Time `json:"date" gorm:"not null;index"`
	OdometerKm float64   `json:"odometer_km" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (TripPoint) TableName() string {
	return "trip_points"
}
