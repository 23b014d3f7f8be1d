package models

import (
	"strings"
	"time"
)

// User logs in with their vehicle license number instead of an email.
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	LicenseNumber string    `json:"license_number" gorm:"uniqueIndex;not null;size:64"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Vehicle    *Vehicle    `json:"vehicle,omitempty" gorm:"foreignKey:UserID"`
	FillUps    []FillUp    `json:"fill_ups,omitempty" gorm:"foreignKey:UserID"`
	TripPoints []TripPoint `json:"trip_points,omitempty" gorm:"foreignKey:UserID"`
}

// NormalizeLicenseNumber canonicalizes a license plate for lookup and storage.
func NormalizeLicenseNumber(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
