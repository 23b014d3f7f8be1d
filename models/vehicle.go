package models

import (
	"time"
)

// Vehicle stores per-user configuration, most importantly the tank capacity
// every fuel projection is clamped against. Exactly one per user; created
// lazily with defaults on first access.
type Vehicle struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:191"`
	UserID             string    `json:"user_id" gorm:"not null;uniqueIndex;size:191"`
	Name               string    `json:"name" gorm:"not null;size:100;default:'My Vehicle'"`
	TankCapacityLiters float64   `json:"tank_capacity_liters" gorm:"not null;default:50"`
	FuelType           string    `json:"fuel_type" gorm:"not null;size:50;default:'Petrol'"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
