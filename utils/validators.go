package utils

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// IsValidFuelAmount bounds a manually entered fuel volume in liters.
func IsValidFuelAmount(liters float64) bool {
	return liters > 0 && liters <= 200
}

// IsValidTankCapacity bounds a configured tank capacity in liters.
func IsValidTankCapacity(liters float64) bool {
	return liters >= 20 && liters <= 200
}

// IsValidFillUpInput checks the numeric fields of a new fill-up record.
func IsValidFillUpInput(odometerKm, fuelLiters, pricePerLiter float64) bool {
	return odometerKm >= 0 &&
		fuelLiters >= 0.1 && fuelLiters <= 200 &&
		pricePerLiter > 0
}
