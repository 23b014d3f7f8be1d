package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fueltrack-api/services"
)

type TripController struct {
	tripService *services.TripService
}

func NewTripController(tripService *services.TripService) *TripController {
	return &TripController{tripService: tripService}
}

// GetStats returns movement-vs-idle aggregates over the recent point window.
func (tc *TripController) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	stats, err := tc.tripService.Stats(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trip stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
