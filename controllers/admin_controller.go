package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
)

type AdminController struct {
	db       *gorm.DB
	fillups  *repositories.FillUpRepository
	points   *repositories.TripPointRepository
	vehicles *repositories.VehicleRepository
}

func NewAdminController(db *gorm.DB, fillups *repositories.FillUpRepository, points *repositories.TripPointRepository, vehicles *repositories.VehicleRepository) *AdminController {
	return &AdminController{
		db:       db,
		fillups:  fillups,
		points:   points,
		vehicles: vehicles,
	}
}

// ListUsers returns all users with their record counts.
func (ac *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.db.Order("created_at ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	result := make([]gin.H, 0, len(users))
	for _, user := range users {
		fillupCount, err := ac.fillups.CountByUser(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count fill-ups"})
			return
		}
		pointCount, err := ac.points.CountByUser(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count trip points"})
			return
		}
		result = append(result, gin.H{
			"user":         user,
			"fillup_count": fillupCount,
			"point_count":  pointCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(result),
		"users": result,
	})
}

// ToggleAdmin flips the admin flag on another user.
func (ac *AdminController) ToggleAdmin(c *gin.Context) {
	callerID := c.GetString("user_id")
	targetID := c.Param("id")

	if callerID == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own admin status"})
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := ac.db.Model(&user).Update("is_admin", !user.IsAdmin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin status updated",
		"is_admin": !user.IsAdmin,
	})
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// ResetPassword sets a new password for a user.
func (ac *AdminController) ResetPassword(c *gin.Context) {
	targetID := c.Param("id")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := ac.db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// DeleteUser removes a user and all of their records in one transaction.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	callerID := c.GetString("user_id")
	targetID := c.Param("id")

	if callerID == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := ac.fillups.DeleteByUser(tx, targetID); err != nil {
			return err
		}
		if err := ac.points.DeleteByUser(tx, targetID); err != nil {
			return err
		}
		if err := ac.vehicles.DeleteByUser(tx, targetID); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
