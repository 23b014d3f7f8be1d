package services

import (
	"time"

	"fueltrack-api/config"
	"fueltrack-api/models"
)

// FuelService derives efficiency, the current fuel state, and the idle burn
// rate from the fill-up history and GPS stream. Every result is recomputed
// from the stored records on each call; nothing is cached. "Not enough data"
// is an explicit unavailable result, never an error.
type FuelService struct {
	fillups  FillUpStore
	points   TripPointStore
	vehicles VehicleStore
	cfg      config.EngineConfig
	now      func() time.Time
}

func NewFuelService(fillups FillUpStore, points TripPointStore, vehicles VehicleStore, cfg config.EngineConfig) *FuelService {
	return &FuelService{
		fillups:  fillups,
		points:   points,
		vehicles: vehicles,
		cfg:      cfg,
		now:      time.Now,
	}
}

// IntervalEfficiency computes the consumption of the interval ending at the
// given fill-up, in L/100km. The tank-level method compares the fuel level
// right after the previous fill with the level right before this one; when
// both fills were to the brim it falls back to the classic method, where the
// volume added now equals the volume consumed since the last fill. The
// second return value reports whether the interval is defined at all.
func (s *FuelService) IntervalEfficiency(userID string, f models.FillUp) (float64, bool, error) {
	prev, err := s.fillups.PreviousByOdometer(userID, f.OdometerKm)
	if err != nil {
		return 0, false, err
	}
	if prev == nil {
		return 0, false, nil
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return 0, false, err
	}

	eff, ok := intervalEfficiency(f, *prev, vehicle.TankCapacityLiters)
	return eff, ok, nil
}

// intervalEfficiency is the pure core of IntervalEfficiency, with the
// previous fill-up and tank capacity already resolved.
func intervalEfficiency(f, prev models.FillUp, tankCapacity float64) (float64, bool) {
	distance := f.OdometerKm - prev.OdometerKm
	if distance <= 0 {
		return 0, false
	}

	// Tank level right after the previous fill.
	var tankAfterPrev *float64
	if prev.IsFullTank {
		tankAfterPrev = &tankCapacity
	} else if prev.FuelBeforeLiters != nil {
		level := clampMin(*prev.FuelBeforeLiters, 0) + clampMin(prev.FuelLiters, 0)
		if level > tankCapacity {
			level = tankCapacity
		}
		tankAfterPrev = &level
	}

	// Tank level right before the current fill.
	var beforeCurrent *float64
	if f.FuelBeforeLiters != nil {
		level := clampMin(*f.FuelBeforeLiters, 0)
		beforeCurrent = &level
	}

	var consumed float64
	switch {
	case tankAfterPrev != nil && beforeCurrent != nil && *tankAfterPrev >= *beforeCurrent:
		consumed = *tankAfterPrev - *beforeCurrent
	case f.IsFullTank && prev.IsFullTank:
		consumed = clampMin(f.FuelLiters, 0)
	default:
		return 0, false
	}

	if consumed <= 0 {
		return 0, false
	}
	return (consumed / distance) * 100.0, true
}

// AverageEfficiency is the volume-added aggregate over the whole history:
// total fuel added across positive-distance intervals divided by the total
// distance of those intervals, per 100 km. It needs at least two fill-ups.
// Note that this deliberately disagrees with IntervalEfficiency in general;
// the interval method is consumption-based and may use pre-fill estimates.
func (s *FuelService) AverageEfficiency(userID string) (float64, bool, error) {
	fillups, err := s.fillups.ByOdometerAsc(userID)
	if err != nil {
		return 0, false, err
	}
	eff, ok := averageEfficiency(fillups)
	return eff, ok, nil
}

func averageEfficiency(fillups []models.FillUp) (float64, bool) {
	if len(fillups) < 2 {
		return 0, false
	}

	totalDistance := 0.0
	totalFuel := 0.0
	for i := 1; i < len(fillups); i++ {
		distance := fillups[i].OdometerKm - fillups[i-1].OdometerKm
		if distance > 0 {
			totalDistance += distance
			totalFuel += fillups[i].FuelLiters
		}
	}

	if totalDistance <= 0 {
		return 0, false
	}
	return (totalFuel / totalDistance) * 100.0, true
}

// FuelAfterFillUp returns the tank level immediately after a fill-up: the
// full capacity for a brim fill, otherwise the pre-fill estimate (zero when
// absent) plus the volume added, clamped to capacity.
func FuelAfterFillUp(f models.FillUp, tankCapacity float64) float64 {
	if f.IsFullTank {
		return tankCapacity
	}
	before := 0.0
	if f.FuelBeforeLiters != nil {
		before = clampMin(*f.FuelBeforeLiters, 0)
	}
	level := before + f.FuelLiters
	if level > tankCapacity {
		level = tankCapacity
	}
	return level
}

// FuelStatus is the current-moment projection of the tank state. Every
// intermediate input is carried along so callers can show how the numbers
// were derived.
type FuelStatus struct {
	RemainingFuelLiters       float64   `json:"remaining_fuel"`
	FuelPercentage            float64   `json:"fuel_percentage"`
	TankCapacityLiters        float64   `json:"tank_capacity"`
	PredictedRangeKm          float64   `json:"predicted_range"`
	EfficiencyLPer100Km       float64   `json:"efficiency"`
	LastFillUpDate            time.Time `json:"last_fillup_date"`
	LastOdometerKm            float64   `json:"last_odometer"`
	CurrentOdometerKm         *float64  `json:"current_odometer"`
	DistanceDrivenKm          *float64  `json:"distance_driven"`
	FuelConsumedLiters        float64   `json:"fuel_consumed_since_last_fillup"`
	FuelAfterFillLiters       float64   `json:"fuel_after_last_fillup"`
	DaysSinceFillUp           int       `json:"days_since_fillup"`
	EstimatedDailyConsumption *float64  `json:"estimated_daily_consumption"`
}

// Status projects the current remaining fuel, percentage of capacity and
// predicted range. With GPS data past the latest fill-up the consumption is
// computed from the actual distance driven; without it, the projection
// assumes the configured daily distance for every day since the fill. A
// fill-up recorded today with no GPS data leaves the tank level untouched.
// Returns (nil, nil) when no fill-up exists or no average efficiency is
// computable.
func (s *FuelService) Status(userID string) (*FuelStatus, error) {
	fillups, err := s.fillups.ByOdometerAsc(userID)
	if err != nil {
		return nil, err
	}
	if len(fillups) == 0 {
		return nil, nil
	}

	efficiency, ok := averageEfficiency(fillups)
	if !ok {
		return nil, nil
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	latest := fillups[len(fillups)-1]
	fuelAfterFill := FuelAfterFillUp(latest, vehicle.TankCapacityLiters)
	daysSinceFill := calendarDaysBetween(latest.Date, s.now())

	status := &FuelStatus{
		TankCapacityLiters:  vehicle.TankCapacityLiters,
		EfficiencyLPer100Km: efficiency,
		LastFillUpDate:      latest.Date,
		LastOdometerKm:      latest.OdometerKm,
		FuelAfterFillLiters: fuelAfterFill,
		DaysSinceFillUp:     daysSinceFill,
	}

	currentOdometer, err := s.currentOdometerFromGPS(userID)
	if err != nil {
		return nil, err
	}

	if currentOdometer != nil && *currentOdometer > latest.OdometerKm {
		distance := *currentOdometer - latest.OdometerKm
		consumed := (efficiency / 100.0) * distance

		status.CurrentOdometerKm = currentOdometer
		status.DistanceDrivenKm = &distance
		status.FuelConsumedLiters = consumed
		status.RemainingFuelLiters = clampMin(fuelAfterFill-consumed, 0)
	} else if daysSinceFill > 0 {
		dailyConsumption := (efficiency / 100.0) * s.cfg.AssumedDailyKm
		consumed := dailyConsumption * float64(daysSinceFill)

		status.EstimatedDailyConsumption = &dailyConsumption
		status.FuelConsumedLiters = consumed
		status.RemainingFuelLiters = clampMin(fuelAfterFill-consumed, 0)
	} else {
		zero := 0.0
		status.EstimatedDailyConsumption = &zero
		status.RemainingFuelLiters = fuelAfterFill
	}

	status.FuelPercentage = (status.RemainingFuelLiters / vehicle.TankCapacityLiters) * 100.0
	status.PredictedRangeKm = (status.RemainingFuelLiters / efficiency) * 100.0

	return status, nil
}

// currentOdometerFromGPS returns the odometer of the user's latest GPS
// point, or nil when no usable point exists.
func (s *FuelService) currentOdometerFromGPS(userID string) (*float64, error) {
	latest, err := s.points.Latest(userID)
	if err != nil {
		return nil, err
	}
	if latest == nil || latest.OdometerKm <= 0 {
		return nil, nil
	}
	odo := latest.OdometerKm
	return &odo, nil
}

// IdleEstimate isolates the fuel burned while idling between the two most
// recent fill-ups. LitersPerHour is nil when no idle time was observed,
// even if idle liters are positive.
type IdleEstimate struct {
	IntervalStart        time.Time `json:"interval_start"`
	IntervalEnd          time.Time `json:"interval_end"`
	DistanceKm           float64   `json:"distance_km"`
	IdleHours            float64   `json:"idle_hours"`
	TotalConsumedLiters  float64   `json:"total_consumed_liters"`
	MovingBaselineLiters float64   `json:"moving_baseline_liters"`
	IdleLiters           float64   `json:"idle_liters"`
	LitersPerHour        *float64  `json:"idle_liters_per_hour"`
}

// IdleRate estimates the engine's idle consumption rate over the interval
// between the last two fill-ups. The total consumed comes from the current
// interval's efficiency; the moving baseline assumes the best (lowest)
// historical interval efficiency over the same distance; whatever exceeds
// the baseline is attributed to idling, apportioned over the observed idle
// time. Returns (nil, nil) when fill-ups, GPS points in the window, or
// interval efficiencies are missing.
func (s *FuelService) IdleRate(userID string) (*IdleEstimate, error) {
	fillups, err := s.fillups.ByDateAsc(userID)
	if err != nil {
		return nil, err
	}
	if len(fillups) < 2 {
		return nil, nil
	}
	prev := fillups[len(fillups)-2]
	curr := fillups[len(fillups)-1]

	points, err := s.points.Window(userID, prev.Date, curr.Date)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, nil
	}

	split := splitMovingIdle(points, s.cfg.IdleJitterKm, s.cfg.IdleSpeedKmh)

	intervalEff, ok, err := s.IntervalEfficiency(userID, curr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	totalConsumed := (intervalEff / 100.0) * clampMin(split.distanceKm, 0)

	bestEff, ok, err := s.bestIntervalEfficiency(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	movingBaseline := (bestEff / 100.0) * clampMin(split.distanceKm, 0)

	idleLiters := clampMin(totalConsumed-movingBaseline, 0)
	idleHours := split.idleSeconds / 3600.0

	estimate := &IdleEstimate{
		IntervalStart:        prev.Date,
		IntervalEnd:          curr.Date,
		DistanceKm:           roundTo(split.distanceKm, 3),
		IdleHours:            roundTo(idleHours, 2),
		TotalConsumedLiters:  roundTo(totalConsumed, 2),
		MovingBaselineLiters: roundTo(movingBaseline, 2),
		IdleLiters:           roundTo(idleLiters, 2),
	}
	if idleHours > 0 {
		rate := roundTo(idleLiters/idleHours, 2)
		estimate.LitersPerHour = &rate
	}
	return estimate, nil
}

// bestIntervalEfficiency returns the minimum (most efficient) interval
// efficiency across the user's whole history.
func (s *FuelService) bestIntervalEfficiency(userID string) (float64, bool, error) {
	fillups, err := s.fillups.ByDateAsc(userID)
	if err != nil {
		return 0, false, err
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return 0, false, err
	}

	best := 0.0
	found := false
	for i := 1; i < len(fillups); i++ {
		prev, err := s.fillups.PreviousByOdometer(userID, fillups[i].OdometerKm)
		if err != nil {
			return 0, false, err
		}
		if prev == nil {
			continue
		}
		if eff, ok := intervalEfficiency(fillups[i], *prev, vehicle.TankCapacityLiters); ok {
			if !found || eff < best {
				best = eff
				found = true
			}
		}
	}
	return best, found, nil
}

// EstimateFuelBefore projects the tank level right before a new fill-up at
// the given odometer reading: the level after the previous fill minus the
// fuel the average efficiency says was burned over the distance between
// them. Returns nil when there is no previous fill-up, no average
// efficiency, or no forward distance.
func (s *FuelService) EstimateFuelBefore(userID string, odometerKm float64) (*float64, error) {
	latest, err := s.fillups.LatestByOdometer(userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	efficiency, ok, err := s.AverageEfficiency(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	distance := odometerKm - latest.OdometerKm
	if distance <= 0 {
		return nil, nil
	}

	vehicle, err := s.vehicles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	consumed := (efficiency / 100.0) * distance
	estimate := clampMin(FuelAfterFillUp(*latest, vehicle.TankCapacityLiters)-consumed, 0)
	return &estimate, nil
}

// PredictRange converts a manually entered fuel amount into a predicted
// range using the average efficiency. The second return value is false when
// no efficiency is computable.
func (s *FuelService) PredictRange(userID string, currentFuelLiters float64) (float64, bool, error) {
	efficiency, ok, err := s.AverageEfficiency(userID)
	if err != nil || !ok {
		return 0, false, err
	}
	return (currentFuelLiters / efficiency) * 100.0, true, nil
}

func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

// calendarDaysBetween counts whole calendar days from the day of a to the
// day of b, ignoring the time of day.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
