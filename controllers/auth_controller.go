package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret string
	vehicles  *repositories.VehicleRepository
}

func NewAuthController(db *gorm.DB, jwtSecret string, vehicles *repositories.VehicleRepository) *AuthController {
	return &AuthController{
		db:        db,
		jwtSecret: jwtSecret,
		vehicles:  vehicles,
	}
}

type RegisterRequest struct {
	LicenseNumber string `json:"license_number" binding:"required"`
	Password      string `json:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	LicenseNumber string `json:"license_number" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	licenseNumber := models.NormalizeLicenseNumber(req.LicenseNumber)

	var existingUser models.User
	if err := ac.db.Where("license_number = ?", licenseNumber).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "License number already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:            uuid.New().String(),
		LicenseNumber: licenseNumber,
		Password:      string(hashedPassword),
	}

	if err := ac.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Every user gets a default vehicle profile up front.
	if _, err := ac.vehicles.GetOrCreate(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	licenseNumber := models.NormalizeLicenseNumber(req.LicenseNumber)

	var user models.User
	if err := ac.db.Where("license_number = ?", licenseNumber).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.generateJWT(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Stateless JWT; logout is handled client-side.
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (ac *AuthController) generateJWT(userID string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
