package services

import "testing"

func TestHaversineKmZeroDistance(t *testing.T) {
	if d := HaversineKm(47.4979, 19.0402, 47.4979, 19.0402); d != 0 {
		t.Errorf("expected zero distance for identical points, got %f", d)
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	d1 := HaversineKm(47.4979, 19.0402, 48.2082, 16.3738)
	d2 := HaversineKm(48.2082, 16.3738, 47.4979, 19.0402)
	if !almostEqual(d1, d2, 1e-9) {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestHaversineKmKnownDistances(t *testing.T) {
	// One degree of arc on a sphere of radius 6371 km is ~111.195 km.
	if d := HaversineKm(0, 0, 0, 1); !almostEqual(d, 111.195, 0.01) {
		t.Errorf("equatorial degree: expected ~111.195 km, got %f", d)
	}
	if d := HaversineKm(0, 0, 1, 0); !almostEqual(d, 111.195, 0.01) {
		t.Errorf("meridian degree: expected ~111.195 km, got %f", d)
	}
}
