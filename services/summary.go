package services

import (
	"time"

	"fueltrack-api/models"
)

// EfficiencyPoint is one entry of the per-fill-up efficiency series.
type EfficiencyPoint struct {
	Date                time.Time `json:"date"`
	EfficiencyLPer100Km float64   `json:"efficiency_l_per_100km"`
}

// FuelSummary aggregates the whole fill-up history for dashboards.
type FuelSummary struct {
	TotalFillUps        int               `json:"total_fillups"`
	TotalSpent          float64           `json:"total_spent"`
	TotalDistanceKm     float64           `json:"total_distance_km"`
	AvgPricePerLiter    float64           `json:"avg_price_per_liter"`
	AverageEfficiency   *float64          `json:"average_efficiency"`
	BestEfficiency      *float64          `json:"best_efficiency"`
	WorstEfficiency     *float64          `json:"worst_efficiency"`
	EfficiencySeries    []EfficiencyPoint `json:"efficiency_series"`
}

// Summary recomputes the dashboard aggregates from the ordered history.
// Best efficiency is the minimum value (lower is better), worst the maximum.
func (s *FuelService) Summary(userID string) (*FuelSummary, error) {
	fillups, err := s.fillups.ByOdometerAsc(userID)
	if err != nil {
		return nil, err
	}

	summary := &FuelSummary{
		TotalFillUps:     len(fillups),
		EfficiencySeries: []EfficiencyPoint{},
	}
	if len(fillups) == 0 {
		return summary, nil
	}

	for _, f := range fillups {
		summary.TotalSpent += f.TotalCost
		summary.AvgPricePerLiter += f.PricePerLiter
	}
	summary.AvgPricePerLiter /= float64(len(fillups))
	if len(fillups) > 1 {
		summary.TotalDistanceKm = fillups[len(fillups)-1].OdometerKm - fillups[0].OdometerKm
	}

	if avg, ok := averageEfficiency(fillups); ok {
		avg = roundTo(avg, 2)
		summary.AverageEfficiency = &avg
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(fillups); i++ {
		if eff, ok := intervalEfficiency(fillups[i], fillups[i-1], vehicle.TankCapacityLiters); ok {
			eff = roundTo(eff, 2)
			summary.EfficiencySeries = append(summary.EfficiencySeries, EfficiencyPoint{
				Date:                fillups[i].Date,
				EfficiencyLPer100Km: eff,
			})
			if summary.BestEfficiency == nil || eff < *summary.BestEfficiency {
				best := eff
				summary.BestEfficiency = &best
			}
			if summary.WorstEfficiency == nil || eff > *summary.WorstEfficiency {
				worst := eff
				summary.WorstEfficiency = &worst
			}
		}
	}

	return summary, nil
}

// HistoryWithEfficiency returns the odometer-ordered fill-up history, each
// record annotated with its interval efficiency when defined.
func (s *FuelService) HistoryWithEfficiency(userID string) ([]models.FillUpWithEfficiency, error) {
	fillups, err := s.fillups.ByOdometerAsc(userID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	history := make([]models.FillUpWithEfficiency, len(fillups))
	for i, f := range fillups {
		history[i] = models.FillUpWithEfficiency{FillUp: f}
		if i > 0 {
			if eff, ok := intervalEfficiency(f, fillups[i-1], vehicle.TankCapacityLiters); ok {
				eff = roundTo(eff, 2)
				history[i].EfficiencyLPer100Km = &eff
			}
		}
	}
	return history, nil
}
