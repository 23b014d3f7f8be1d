package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Engine tuning. These started life as hardcoded constants; every one of
	// them is overridable from the environment.
	Engine EngineConfig
}

// EngineConfig holds the thresholds and heuristics used by the estimation
// services.
type EngineConfig struct {
	// Distances below this are treated as GPS jitter when accumulating the
	// odometer and computing trip stats (km).
	JitterKm float64
	// Coarser jitter threshold used when isolating idle consumption between
	// fill-ups (km).
	IdleJitterKm float64
	// Speeds below this count as idle time (km/h).
	IdleSpeedKmh float64
	// Assumed distance per day when no GPS data is available to project the
	// current fuel level (km/day).
	AssumedDailyKm float64
	// Fallback idle burn rate used for trip-stats fuel estimates (L/hour).
	IdleFuelLPH float64
	// Fallback efficiency for trip-stats fuel estimates when no fill-up
	// history exists yet (L/100km).
	DefaultEfficiency float64
	// Default tank capacity for lazily created vehicles (liters).
	DefaultTankCapacity float64
	// Query window caps.
	LocationLimit  int
	TripStatsLimit int
	// GPS points older than this many days are pruned by the retention job.
	PointRetentionDays int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/fueltrack?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		Engine: EngineConfig{
			JitterKm:            getEnvFloat("ENGINE_JITTER_KM", 0.005),
			IdleJitterKm:        getEnvFloat("ENGINE_IDLE_JITTER_KM", 0.01),
			IdleSpeedKmh:        getEnvFloat("ENGINE_IDLE_SPEED_KMH", 2.0),
			AssumedDailyKm:      getEnvFloat("ENGINE_ASSUMED_DAILY_KM", 30.0),
			IdleFuelLPH:         getEnvFloat("ENGINE_IDLE_FUEL_LPH", 0.8),
			DefaultEfficiency:   getEnvFloat("ENGINE_DEFAULT_EFFICIENCY", 10.0),
			DefaultTankCapacity: getEnvFloat("ENGINE_DEFAULT_TANK_CAPACITY", 50.0),
			LocationLimit:       getEnvInt("ENGINE_LOCATION_LIMIT", 500),
			TripStatsLimit:      getEnvInt("ENGINE_TRIP_STATS_LIMIT", 2000),
			PointRetentionDays:  getEnvInt("ENGINE_POINT_RETENTION_DAYS", 180),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
