package services

import (
	"testing"
	"time"

	"fueltrack-api/models"
)

func tripPoint(userID string, lat, lon float64, at time.Time) models.TripPoint {
	return models.TripPoint{
		UserID:   userID,
		Latitude: lat, Longitude: lon,
		TripDate: at,
	}
}

func TestStatsFewerThanTwoPoints(t *testing.T) {
	store := newMemStore()
	store.points = append(store.points, tripPoint("user-1", 47.0, 19.0, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	svc := NewTripService(store, store, testEngineConfig())

	stats, err := svc.Stats("user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalDistanceKm != 0 || stats.MovingTimeMinutes != 0 || stats.IdleTimeMinutes != 0 || stats.TotalPoints != 0 {
		t.Errorf("expected all-zero stats for a single point, got %+v", stats)
	}
	if stats.LastUpdate != nil {
		t.Error("expected nil last update for a single point")
	}
}

func TestStatsMovingIdleSplit(t *testing.T) {
	store := newMemStore()
	t0 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	// One minute of driving ~1.112 km, then one minute parked.
	store.points = append(store.points,
		tripPoint("user-1", 0, 0, t0),
		tripPoint("user-1", 0, 0.01, t0.Add(time.Minute)),
		tripPoint("user-1", 0, 0.01, t0.Add(2*time.Minute)),
	)
	svc := NewTripService(store, store, testEngineConfig())

	stats, err := svc.Stats("user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(stats.TotalDistanceKm, 1.112, 0.001) {
		t.Errorf("expected ~1.112 km, got %f", stats.TotalDistanceKm)
	}
	if stats.MovingTimeMinutes != 1.0 {
		t.Errorf("expected 1.0 moving minutes, got %f", stats.MovingTimeMinutes)
	}
	if stats.IdleTimeMinutes != 1.0 {
		t.Errorf("expected 1.0 idle minutes, got %f", stats.IdleTimeMinutes)
	}
	if !almostEqual(stats.MaxSpeedKmh, 66.7, 0.1) {
		t.Errorf("expected ~66.7 km/h max speed, got %f", stats.MaxSpeedKmh)
	}
	if stats.AvgSpeedKmh != stats.MaxSpeedKmh {
		t.Errorf("single moving interval: avg %f should equal max %f", stats.AvgSpeedKmh, stats.MaxSpeedKmh)
	}
	if stats.TotalPoints != 3 {
		t.Errorf("expected 3 points, got %d", stats.TotalPoints)
	}
	if stats.LastUpdate == nil || !stats.LastUpdate.Equal(t0.Add(2*time.Minute)) {
		t.Errorf("unexpected last update: %v", stats.LastUpdate)
	}
	// No fill-up history, so fuel estimates use the 10 L/100km default and
	// the 0.8 L/h idle rate.
	if stats.EfficiencyLPer100Km != 10.0 {
		t.Errorf("expected default efficiency 10.0, got %f", stats.EfficiencyLPer100Km)
	}
	if !almostEqual(stats.MovingFuelLiters, 0.11, 0.001) {
		t.Errorf("expected ~0.11 L moving fuel, got %f", stats.MovingFuelLiters)
	}
	if !almostEqual(stats.IdleFuelLiters, 0.01, 0.001) {
		t.Errorf("expected ~0.01 L idle fuel, got %f", stats.IdleFuelLiters)
	}
}

func TestStatsUsesHistoryEfficiency(t *testing.T) {
	store := newMemStore()
	t0 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store.points = append(store.points,
		tripPoint("user-1", 0, 0, t0),
		tripPoint("user-1", 0, 0.01, t0.Add(time.Minute)),
	)
	// 35 liters over 500 km is 7.0 L/100km.
	store.fillups = append(store.fillups,
		models.FillUp{UserID: "user-1", OdometerKm: 1000, FuelLiters: 40, IsFullTank: true, Date: t0.AddDate(0, 0, -10)},
		models.FillUp{UserID: "user-1", OdometerKm: 1500, FuelLiters: 35, IsFullTank: true, Date: t0.AddDate(0, 0, -2)},
	)
	svc := NewTripService(store, store, testEngineConfig())

	stats, err := svc.Stats("user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.EfficiencyLPer100Km != 7.0 {
		t.Errorf("expected history efficiency 7.0, got %f", stats.EfficiencyLPer100Km)
	}
}

func TestSplitMovingIdleSkipsClockAnomalies(t *testing.T) {
	t0 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	points := []models.TripPoint{
		tripPoint("user-1", 0, 0, t0),
		tripPoint("user-1", 0, 0.01, t0.Add(time.Minute)),
		// Same timestamp as the previous point; the pair contributes nothing.
		tripPoint("user-1", 0, 0.02, t0.Add(time.Minute)),
	}

	split := splitMovingIdle(points, 0.005, 2.0)
	if !almostEqual(split.distanceKm, 1.112, 0.001) {
		t.Errorf("anomalous pair should be skipped, got distance %f", split.distanceKm)
	}
	if split.movingSeconds != 60 || split.idleSeconds != 0 {
		t.Errorf("unexpected time split: moving=%f idle=%f", split.movingSeconds, split.idleSeconds)
	}
}

func TestSplitMovingIdleZeroedDistanceCountsAsIdle(t *testing.T) {
	t0 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	// ~1 meter apart, below the jitter threshold.
	points := []models.TripPoint{
		tripPoint("user-1", 47.49790, 19.0402, t0),
		tripPoint("user-1", 47.49791, 19.0402, t0.Add(30*time.Second)),
	}

	split := splitMovingIdle(points, 0.005, 2.0)
	if split.distanceKm != 0 {
		t.Errorf("expected zero distance, got %f", split.distanceKm)
	}
	if split.idleSeconds != 30 || split.movingSeconds != 0 {
		t.Errorf("jittering device should accumulate idle time: moving=%f idle=%f", split.movingSeconds, split.idleSeconds)
	}
}
