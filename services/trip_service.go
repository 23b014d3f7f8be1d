package services

import (
	"time"

	"fueltrack-api/config"
	"fueltrack-api/models"
)

// TripService aggregates a window of GPS points into moving-vs-idle
// statistics and fuel estimates.
type TripService struct {
	points  TripPointStore
	fillups FillUpStore
	cfg     config.EngineConfig
}

func NewTripService(points TripPointStore, fillups FillUpStore, cfg config.EngineConfig) *TripService {
	return &TripService{
		points:  points,
		fillups: fillups,
		cfg:     cfg,
	}
}

// TripStats summarizes movement over the analyzed point window.
type TripStats struct {
	TotalDistanceKm     float64    `json:"total_distance_km"`
	MovingTimeMinutes   float64    `json:"moving_time_minutes"`
	IdleTimeMinutes     float64    `json:"idle_time_minutes"`
	IdleFuelLiters      float64    `json:"idle_fuel_liters"`
	MovingFuelLiters    float64    `json:"moving_fuel_liters"`
	TotalFuelLiters     float64    `json:"total_fuel_liters"`
	MaxSpeedKmh         float64    `json:"max_speed_kmh"`
	AvgSpeedKmh         float64    `json:"avg_speed_kmh"`
	TotalPoints         int        `json:"total_points"`
	LastUpdate          *time.Time `json:"last_update"`
	EfficiencyLPer100Km float64    `json:"efficiency_l_per_100km"`
}

// Stats walks consecutive point pairs of the user's most recent window
// (oldest first). Pairs with non-positive elapsed time are clock anomalies
// and are skipped silently; distances below the jitter threshold count as
// zero. An interval at or above the idle speed threshold is moving time,
// anything slower is idle time. The average speed is the plain mean of the
// qualifying interval speeds, not distance-weighted. Fewer than two points
// yields an all-zero result, not an error.
func (s *TripService) Stats(userID string, limit int) (*TripStats, error) {
	if limit <= 0 {
		limit = s.cfg.TripStatsLimit
	}
	points, err := s.points.Recent(userID, limit)
	if err != nil {
		return nil, err
	}
	// Fetched newest first; walk oldest first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	if len(points) < 2 {
		return &TripStats{}, nil
	}

	split := splitMovingIdle(points, s.cfg.JitterKm, s.cfg.IdleSpeedKmh)

	avgSpeed := 0.0
	if split.speedSamples > 0 {
		avgSpeed = split.speedSum / float64(split.speedSamples)
	}

	// Fuel estimates use the user's actual average efficiency when the
	// fill-up history supports one.
	efficiency := s.cfg.DefaultEfficiency
	if fillups, err := s.fillups.ByOdometerAsc(userID); err != nil {
		return nil, err
	} else if avg, ok := averageEfficiency(fillups); ok {
		efficiency = avg
	}

	movingFuel := (efficiency / 100.0) * split.distanceKm
	idleFuel := s.cfg.IdleFuelLPH * (split.idleSeconds / 3600.0)

	lastUpdate := points[len(points)-1].TripDate

	return &TripStats{
		TotalDistanceKm:     roundTo(split.distanceKm, 3),
		MovingTimeMinutes:   roundTo(split.movingSeconds/60.0, 1),
		IdleTimeMinutes:     roundTo(split.idleSeconds/60.0, 1),
		IdleFuelLiters:      roundTo(idleFuel, 2),
		MovingFuelLiters:    roundTo(movingFuel, 2),
		TotalFuelLiters:     roundTo(idleFuel+movingFuel, 2),
		MaxSpeedKmh:         roundTo(split.maxSpeedKmh, 1),
		AvgSpeedKmh:         roundTo(avgSpeed, 1),
		TotalPoints:         len(points),
		LastUpdate:          &lastUpdate,
		EfficiencyLPer100Km: roundTo(efficiency, 1),
	}, nil
}

type movingIdleSplit struct {
	distanceKm    float64
	movingSeconds float64
	idleSeconds   float64
	maxSpeedKmh   float64
	speedSum      float64
	speedSamples  int
}

// splitMovingIdle classifies the time between consecutive points as moving
// or idle using the given jitter and speed thresholds. Points must be
// ordered oldest first.
func splitMovingIdle(points []models.TripPoint, jitterKm, idleSpeedKmh float64) movingIdleSplit {
	var split movingIdleSplit
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]
		dt := p2.TripDate.Sub(p1.TripDate).Seconds()
		if dt <= 0 {
			continue
		}
		dKm := HaversineKm(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
		if dKm < jitterKm {
			dKm = 0.0
		}
		split.distanceKm += dKm

		speedKmh := (dKm / dt) * 3600.0
		if dKm > 0 && speedKmh >= idleSpeedKmh {
			split.movingSeconds += dt
			if speedKmh > split.maxSpeedKmh {
				split.maxSpeedKmh = speedKmh
			}
			split.speedSum += speedKmh
			split.speedSamples++
		} else {
			split.idleSeconds += dt
		}
	}
	return split
}
