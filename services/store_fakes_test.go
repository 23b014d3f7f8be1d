package services

import (
	"math"
	"sort"
	"time"

	"fueltrack-api/config"
	"fueltrack-api/models"
)

// memStore is an in-memory record store standing in for the gorm
// repositories. It implements TripPointStore, FillUpStore and VehicleStore.
type memStore struct {
	points  []models.TripPoint
	fillups []models.FillUp
	vehicle models.Vehicle
}

func newMemStore() *memStore {
	return &memStore{
		vehicle: models.Vehicle{
			ID:                 "vehicle-1",
			UserID:             "user-1",
			Name:               "My Vehicle",
			TankCapacityLiters: 50,
			FuelType:           "Petrol",
		},
	}
}

func (m *memStore) Insert(point *models.TripPoint) error {
	m.points = append(m.points, *point)
	return nil
}

func (m *memStore) Latest(userID string) (*models.TripPoint, error) {
	var latest *models.TripPoint
	for i := range m.points {
		p := m.points[i]
		if p.UserID != userID {
			continue
		}
		if latest == nil || !p.TripDate.Before(latest.TripDate) {
			latest = &m.points[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *memStore) Recent(userID string, limit int) ([]models.TripPoint, error) {
	var out []models.TripPoint
	for _, p := range m.points {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TripDate.After(out[j].TripDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Window(userID string, from, to time.Time) ([]models.TripPoint, error) {
	var out []models.TripPoint
	for _, p := range m.points {
		if p.UserID != userID {
			continue
		}
		if p.TripDate.Before(from) || p.TripDate.After(to) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TripDate.Before(out[j].TripDate)
	})
	return out, nil
}

func (m *memStore) ByOdometerAsc(userID string) ([]models.FillUp, error) {
	var out []models.FillUp
	for _, f := range m.fillups {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OdometerKm < out[j].OdometerKm
	})
	return out, nil
}

func (m *memStore) ByDateAsc(userID string) ([]models.FillUp, error) {
	var out []models.FillUp
	for _, f := range m.fillups {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (m *memStore) LatestByOdometer(userID string) (*models.FillUp, error) {
	var latest *models.FillUp
	for i := range m.fillups {
		f := m.fillups[i]
		if f.UserID != userID {
			continue
		}
		if latest == nil || f.OdometerKm > latest.OdometerKm {
			latest = &m.fillups[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *memStore) PreviousByOdometer(userID string, odometerKm float64) (*models.FillUp, error) {
	var prev *models.FillUp
	for i := range m.fillups {
		f := m.fillups[i]
		if f.UserID != userID || f.OdometerKm >= odometerKm {
			continue
		}
		if prev == nil || f.OdometerKm > prev.OdometerKm {
			prev = &m.fillups[i]
		}
	}
	if prev == nil {
		return nil, nil
	}
	cp := *prev
	return &cp, nil
}

func (m *memStore) GetOrCreate(userID string) (*models.Vehicle, error) {
	cp := m.vehicle
	cp.UserID = userID
	return &cp, nil
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		JitterKm:            0.005,
		IdleJitterKm:        0.01,
		IdleSpeedKmh:        2.0,
		AssumedDailyKm:      30.0,
		IdleFuelLPH:         0.8,
		DefaultEfficiency:   10.0,
		DefaultTankCapacity: 50.0,
		LocationLimit:       500,
		TripStatsLimit:      2000,
		PointRetentionDays:  180,
	}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func floatPtr(v float64) *float64 {
	return &v
}
