package jobs

import (
	"fmt"
	"time"

	"fueltrack-api/repositories"
)

// PointRetentionJob periodically prunes GPS points older than the retention
// window. The odometer stream stays consistent because accumulation only
// reads the latest stored point.
type PointRetentionJob struct {
	points    *repositories.TripPointRepository
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
}

// NewPointRetentionJob creates a retention job that prunes points older
// than retentionDays on the given interval.
func NewPointRetentionJob(points *repositories.TripPointRepository, retentionDays int, interval time.Duration) *PointRetentionJob {
	return &PointRetentionJob{
		points:    points,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		ticker:    time.NewTicker(interval),
		done:      make(chan bool),
	}
}

// Start begins the retention job
func (j *PointRetentionJob) Start() {
	fmt.Println("Trip point retention job started")

	go func() {
		// Run immediately on start
		j.prune()

		for {
			select {
			case <-j.ticker.C:
				j.prune()
			case <-j.done:
				fmt.Println("Trip point retention job stopped")
				return
			}
		}
	}()
}

// Stop stops the retention job
func (j *PointRetentionJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *PointRetentionJob) prune() {
	cutoff := time.Now().Add(-j.retention)

	removed, err := j.points.DeleteOlderThan(cutoff)
	if err != nil {
		fmt.Printf("Error during trip point retention: %v\n", err)
		return
	}

	if removed > 0 {
		fmt.Printf("Trip point retention removed %d points older than %s\n", removed, cutoff.Format("2006-01-02"))
	}
}
