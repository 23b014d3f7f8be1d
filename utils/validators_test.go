package utils

import "testing"

func TestIsValidLatitude(t *testing.T) {
	for _, lat := range []float64{-90, 0, 47.4979, 90} {
		if !IsValidLatitude(lat) {
			t.Errorf("expected %f to be valid", lat)
		}
	}
	for _, lat := range []float64{-90.01, 90.01, 180} {
		if IsValidLatitude(lat) {
			t.Errorf("expected %f to be invalid", lat)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	for _, lng := range []float64{-180, 0, 19.0402, 180} {
		if !IsValidLongitude(lng) {
			t.Errorf("expected %f to be valid", lng)
		}
	}
	for _, lng := range []float64{-180.01, 180.01} {
		if IsValidLongitude(lng) {
			t.Errorf("expected %f to be invalid", lng)
		}
	}
}

func TestIsValidFuelAmount(t *testing.T) {
	if IsValidFuelAmount(0) {
		t.Error("zero liters is not a valid amount")
	}
	if IsValidFuelAmount(200.1) {
		t.Error("amounts above 200 liters are invalid")
	}
	if !IsValidFuelAmount(0.5) || !IsValidFuelAmount(200) {
		t.Error("expected 0.5 and 200 liters to be valid")
	}
}

func TestIsValidTankCapacity(t *testing.T) {
	if IsValidTankCapacity(19.9) || IsValidTankCapacity(200.1) {
		t.Error("capacities outside 20-200 liters are invalid")
	}
	if !IsValidTankCapacity(20) || !IsValidTankCapacity(50) || !IsValidTankCapacity(200) {
		t.Error("expected 20, 50 and 200 liters to be valid")
	}
}

func TestIsValidFillUpInput(t *testing.T) {
	if !IsValidFillUpInput(12000, 35, 1.65) {
		t.Error("expected a normal fill-up to be valid")
	}
	if IsValidFillUpInput(-1, 35, 1.65) {
		t.Error("negative odometer readings are invalid")
	}
	if IsValidFillUpInput(12000, 0.05, 1.65) {
		t.Error("fills below 0.1 liters are invalid")
	}
	if IsValidFillUpInput(12000, 35, 0) {
		t.Error("a zero price is invalid")
	}
}
