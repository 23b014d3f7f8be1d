package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fueltrack-api/services"
	"fueltrack-api/utils"
)

type LocationController struct {
	locationService *services.LocationService
}

func NewLocationController(locationService *services.LocationService) *LocationController {
	return &LocationController{locationService: locationService}
}

type SaveLocationRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
	Accuracy  *float64 `json:"accuracy"`
	Timestamp string   `json:"timestamp"`
}

// SaveLocation ingests one GPS report and responds with the assigned
// odometer reading.
func (lc *LocationController) SaveLocation(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Latitude != nil && !utils.IsValidLatitude(*req.Latitude) {
		utils.SendValidationError(c, "latitude out of range")
		return
	}
	if req.Longitude != nil && !utils.IsValidLongitude(*req.Longitude) {
		utils.SendValidationError(c, "longitude out of range")
		return
	}

	recorded, err := lc.locationService.RecordLocation(userID, services.RecordLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingCoordinates) {
			utils.SendValidationError(c, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save location"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Location saved successfully",
		"point_id":       recorded.PointID,
		"odometer_km":    recorded.OdometerKm,
		"incremental_km": recorded.IncrementalKm,
	})
}

// GetLocations returns the user's recent points in chronological order.
func (lc *LocationController) GetLocations(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	points, err := lc.locationService.GetLocations(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, points)
}
