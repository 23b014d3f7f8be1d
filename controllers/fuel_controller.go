package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fueltrack-api/services"
	"fueltrack-api/utils"
)

type FuelController struct {
	fuelService *services.FuelService
}

func NewFuelController(fuelService *services.FuelService) *FuelController {
	return &FuelController{fuelService: fuelService}
}

// GetStatus returns the projected current fuel state, or an explicit
// unavailable result when the history cannot support one.
func (fc *FuelController) GetStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	status, err := fc.fuelService.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute fuel status"})
		return
	}
	if status == nil {
		utils.SendUnavailable(c, "Not enough fill-up history to compute a fuel status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetEfficiency returns the aggregate efficiency across the whole history.
func (fc *FuelController) GetEfficiency(c *gin.Context) {
	userID := c.GetString("user_id")

	efficiency, ok, err := fc.fuelService.AverageEfficiency(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute efficiency"})
		return
	}
	if !ok {
		utils.SendUnavailable(c, "At least two fill-ups are required to compute efficiency")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":              true,
		"efficiency_l_per_100km": efficiency,
	})
}

// GetIdleRate returns the idle consumption estimate for the interval between
// the last two fill-ups.
func (fc *FuelController) GetIdleRate(c *gin.Context) {
	userID := c.GetString("user_id")

	estimate, err := fc.fuelService.IdleRate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute idle rate"})
		return
	}
	if estimate == nil {
		utils.SendUnavailable(c, "Not enough fill-ups or GPS points in the last interval")
		return
	}

	c.JSON(http.StatusOK, estimate)
}

type PredictRangeRequest struct {
	CurrentFuelLiters float64 `json:"current_fuel_liters"`
}

// PredictRange converts a manually entered fuel amount into a predicted
// driving range.
func (fc *FuelController) PredictRange(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PredictRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "current_fuel_liters must be a number")
		return
	}

	if !utils.IsValidFuelAmount(req.CurrentFuelLiters) {
		utils.SendValidationError(c, "current_fuel_liters must be between 0 and 200")
		return
	}

	rangeKm, ok, err := fc.fuelService.PredictRange(userID, req.CurrentFuelLiters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to predict range"})
		return
	}
	if !ok {
		utils.SendUnavailable(c, "At least two fill-ups are required to predict range")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":           true,
		"current_fuel_liters": req.CurrentFuelLiters,
		"predicted_range_km":  rangeKm,
	})
}
