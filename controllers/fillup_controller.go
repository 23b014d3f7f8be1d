package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/services"
	"fueltrack-api/utils"
)

type FillUpController struct {
	fillups     *repositories.FillUpRepository
	vehicles    *repositories.VehicleRepository
	fuelService *services.FuelService
}

func NewFillUpController(fillups *repositories.FillUpRepository, vehicles *repositories.VehicleRepository, fuelService *services.FuelService) *FillUpController {
	return &FillUpController{
		fillups:     fillups,
		vehicles:    vehicles,
		fuelService: fuelService,
	}
}

type AddFillUpRequest struct {
	Date             string   `json:"date"` // RFC 3339; empty means now
	OdometerKm       float64  `json:"odometer_km" binding:"required"`
	FuelLiters       float64  `json:"fuel_liters" binding:"required"`
	IsFullTank       bool     `json:"is_full_tank"`
	FuelBeforeLiters *float64 `json:"fuel_before_liters"`
	PricePerLiter    float64  `json:"price_per_liter" binding:"required"`
	Notes            string   `json:"notes"`
}

// AddFillUp records a refueling event. Odometer readings must be strictly
// greater than the user's latest entry; the pre-fill tank estimate is
// projected from the previous fill when the user does not supply one.
func (fc *FillUpController) AddFillUp(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddFillUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidFillUpInput(req.OdometerKm, req.FuelLiters, req.PricePerLiter) {
		utils.SendValidationError(c, "odometer_km, fuel_liters and price_per_liter are out of range")
		return
	}
	if req.FuelBeforeLiters != nil && *req.FuelBeforeLiters < 0 {
		utils.SendValidationError(c, "fuel_before_liters must not be negative")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			utils.SendValidationError(c, "date must be RFC 3339")
			return
		}
		date = parsed
	}

	// Enforce strictly increasing odometer readings per user.
	latest, err := fc.fillups.LatestByOdometer(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check fill-up history"})
		return
	}
	if latest != nil && req.OdometerKm <= latest.OdometerKm {
		utils.SendValidationError(c, fmt.Sprintf("odometer reading must be greater than your last entry (%.1f km)", latest.OdometerKm))
		return
	}

	fuelBefore := req.FuelBeforeLiters
	if fuelBefore == nil {
		estimated, err := fc.fuelService.EstimateFuelBefore(userID, req.OdometerKm)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to estimate tank level"})
			return
		}
		fuelBefore = estimated
	}

	fillup := models.FillUp{
		ID:               uuid.New().String(),
		UserID:           userID,
		Date:             date,
		OdometerKm:       req.OdometerKm,
		FuelLiters:       req.FuelLiters,
		IsFullTank:       req.IsFullTank,
		FuelBeforeLiters: fuelBefore,
		PricePerLiter:    req.PricePerLiter,
		TotalCost:        req.FuelLiters * req.PricePerLiter,
		Notes:            req.Notes,
	}

	if err := fc.fillups.Create(&fillup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save fill-up"})
		return
	}

	response := gin.H{
		"message": "Fill-up added successfully",
		"fillup":  fillup,
	}
	if efficiency, ok, err := fc.fuelService.IntervalEfficiency(userID, fillup); err == nil && ok {
		response["efficiency_l_per_100km"] = efficiency
	}

	c.JSON(http.StatusCreated, response)
}

// GetHistory lists all fill-ups ordered by odometer, each annotated with
// the efficiency of the interval ending at it when computable.
func (fc *FillUpController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	history, err := fc.fuelService.HistoryWithEfficiency(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fill-up history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

// DeleteFillUp removes one of the caller's own fill-ups.
func (fc *FillUpController) DeleteFillUp(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	fillup, err := fc.fillups.ByID(id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up fill-up"})
		return
	}
	if fillup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fill-up not found"})
		return
	}

	if err := fc.fillups.Delete(id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fill-up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fill-up deleted successfully"})
}

// GetLastFillUp returns the latest fill-up with the tank level right after
// it and the current average efficiency.
func (fc *FillUpController) GetLastFillUp(c *gin.Context) {
	userID := c.GetString("user_id")

	latest, err := fc.fillups.LatestByOdometer(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fill-up"})
		return
	}
	if latest == nil {
		utils.SendUnavailable(c, "No fill-ups recorded yet")
		return
	}

	vehicle, err := fc.vehicles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle"})
		return
	}

	response := gin.H{
		"available": true,
		"last_fillup": gin.H{
			"odometer_km":       latest.OdometerKm,
			"fuel_after_fillup": services.FuelAfterFillUp(*latest, vehicle.TankCapacityLiters),
			"date":              latest.Date,
		},
	}
	if efficiency, ok, err := fc.fuelService.AverageEfficiency(userID); err == nil && ok {
		response["average_efficiency"] = efficiency
	}

	c.JSON(http.StatusOK, response)
}

// GetSummary returns dashboard aggregates over the whole history.
func (fc *FillUpController) GetSummary(c *gin.Context) {
	userID := c.GetString("user_id")

	summary, err := fc.fuelService.Summary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
