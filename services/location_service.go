package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fueltrack-api/config"
	"fueltrack-api/models"
)

// ErrMissingCoordinates is returned when a location report omits latitude or
// longitude. It is a caller error, not a store fault.
var ErrMissingCoordinates = errors.New("latitude and longitude are required")

// LocationService ingests GPS reports and assigns each point its cumulative
// odometer reading.
type LocationService struct {
	points TripPointStore
	cfg    config.EngineConfig
	now    func() time.Time
}

func NewLocationService(points TripPointStore, cfg config.EngineConfig) *LocationService {
	return &LocationService{
		points: points,
		cfg:    cfg,
		now:    time.Now,
	}
}

// RecordLocationInput carries one GPS report. Latitude and longitude are
// required; accuracy and timestamp are optional, and a missing or malformed
// timestamp falls back to the current time.
type RecordLocationInput struct {
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64
	Timestamp string
}

// RecordedLocation is the outcome of a successful report.
type RecordedLocation struct {
	PointID       string  `json:"point_id"`
	OdometerKm    float64 `json:"odometer_km"`
	IncrementalKm float64 `json:"incremental_km"`
}

// RecordLocation assigns the new point an odometer reading relative to the
// user's most recent stored point and persists it. The first point for a
// user starts the odometer at zero. Movement below the jitter threshold
// contributes exactly zero, so a stationary device never accumulates
// distance. Past points are never recomputed.
func (s *LocationService) RecordLocation(userID string, in RecordLocationInput) (*RecordedLocation, error) {
	if in.Latitude == nil || in.Longitude == nil {
		return nil, ErrMissingCoordinates
	}
	lat, lon := *in.Latitude, *in.Longitude

	tripDate := s.parseTimestamp(in.Timestamp)

	last, err := s.points.Latest(userID)
	if err != nil {
		return nil, err
	}

	incrementalKm := 0.0
	odometerKm := 0.0
	if last != nil {
		incrementalKm = HaversineKm(last.Latitude, last.Longitude, lat, lon)
		if incrementalKm < s.cfg.JitterKm {
			incrementalKm = 0.0
		}
		odometerKm = last.OdometerKm + incrementalKm
	}

	point := &models.TripPoint{
		ID:         uuid.New().String(),
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		Accuracy:   in.Accuracy,
		TripDate:   tripDate,
		OdometerKm: odometerKm,
	}

	if err := s.points.Insert(point); err != nil {
		return nil, err
	}

	return &RecordedLocation{
		PointID:       point.ID,
		OdometerKm:    odometerKm,
		IncrementalKm: incrementalKm,
	}, nil
}

// GetLocations returns up to limit of the user's most recent points in
// chronological order. A non-positive limit uses the configured cap.
func (s *LocationService) GetLocations(userID string, limit int) ([]models.TripPoint, error) {
	if limit <= 0 {
		limit = s.cfg.LocationLimit
	}
	points, err := s.points.Recent(userID, limit)
	if err != nil {
		return nil, err
	}
	// Fetched newest first; return oldest first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

func (s *LocationService) parseTimestamp(value string) time.Time {
	if value == "" {
		return s.now().UTC()
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return s.now().UTC()
}
