package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fueltrack-api/repositories"
	"fueltrack-api/utils"
)

type VehicleController struct {
	vehicles *repositories.VehicleRepository
}

func NewVehicleController(vehicles *repositories.VehicleRepository) *VehicleController {
	return &VehicleController{vehicles: vehicles}
}

type UpdateVehicleRequest struct {
	Name               string  `json:"name" binding:"required"`
	TankCapacityLiters float64 `json:"tank_capacity_liters" binding:"required"`
	FuelType           string  `json:"fuel_type"`
}

// GetVehicle returns the caller's vehicle profile, creating the default one
// on first access.
func (vc *VehicleController) GetVehicle(c *gin.Context) {
	userID := c.GetString("user_id")

	vehicle, err := vc.vehicles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle changes the vehicle name, tank capacity and fuel type.
func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidTankCapacity(req.TankCapacityLiters) {
		utils.SendValidationError(c, "tank_capacity_liters must be between 20 and 200")
		return
	}

	vehicle, err := vc.vehicles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle"})
		return
	}

	vehicle.Name = req.Name
	vehicle.TankCapacityLiters = req.TankCapacityLiters
	if req.FuelType != "" {
		vehicle.FuelType = req.FuelType
	}

	if err := vc.vehicles.Update(vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle settings updated successfully",
		"vehicle": vehicle,
	})
}
