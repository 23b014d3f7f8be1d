package models

import (
	"time"
)

// FillUp is one refueling event. Odometer readings are strictly increasing
// per user; that is enforced when the record is created, never retroactively.
type FillUp struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	UserID     string    `json:"user_id" gorm:"not null;index;size:191"`
	Date       time.Time `json:"date" gorm:"not null"`
	OdometerKm float64   `json:"odometer_km" gorm:"not null"`
	FuelLiters float64   `json:"fuel_liters" gorm:"not null"`
	// Whether this fill-up brought the tank to full. Full fills anchor the
	// tank level to the configured capacity.
	IsFullTank bool `json:"is_full_tank" gorm:"not null;default:false"`
	// Estimated fuel in the tank immediately before this fill-up (liters).
	FuelBeforeLiters *float64  `json:"fuel_before_liters"`
	PricePerLiter    float64   `json:"price_per_liter" gorm:"not null"`
	TotalCost        float64   `json:"total_cost" gorm:"not null"`
	Notes            string    `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (FillUp) TableName() string {
	return "fill_ups"
}

// FillUpWithEfficiency decorates a fill-up with the efficiency of the
// interval ending at it, when one is computable.
type FillUpWithEfficiency struct {
	FillUp
	EfficiencyLPer100Km *float64 `json:"efficiency_l_per_100km"`
}
