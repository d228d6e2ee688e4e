package deliveryControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/httperr"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

// bodaProfile loads the rider profile for the authenticated user,
// creating an unverified one on first access.
func bodaProfile(db *gorm.DB, c *gin.Context) (*models.BodaProfile, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return nil, httperr.New(http.StatusUnauthorized, "Unauthorized")
	}

	var profile models.BodaProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.BodaProfile{UserID: userID}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GET /boda/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := bodaProfile(db, c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type UpdateProfileRequest struct {
	VehicleType      *string  `json:"vehicle_type"`
	VehiclePlate     *string  `json:"vehicle_plate"`
	LicenseNumber    *string  `json:"license_number"`
	IsAvailable      *bool    `json:"is_available"`
	CurrentLatitude  *float64 `json:"current_latitude"`
	CurrentLongitude *float64 `json:"current_longitude"`
}

// PATCH /boda/profile
// Riders toggle availability and update vehicle details and position.
// Verification is admin-only and cannot be set here.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := bodaProfile(db, c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.VehicleType != nil {
			updates["vehicle_type"] = *req.VehicleType
		}
		if req.VehiclePlate != nil {
			updates["vehicle_plate"] = *req.VehiclePlate
		}
		if req.LicenseNumber != nil {
			updates["license_number"] = *req.LicenseNumber
		}
		if req.IsAvailable != nil {
			updates["is_available"] = *req.IsAvailable
		}
		if req.CurrentLatitude != nil {
			updates["current_latitude"] = *req.CurrentLatitude
		}
		if req.CurrentLongitude != nil {
			updates["current_longitude"] = *req.CurrentLongitude
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		if err := db.Model(&models.BodaProfile{}).Where("id = ?", profile.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		var updated models.BodaProfile
		if err := db.First(&updated, "id = ?", profile.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload profile"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// GET /boda/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := bodaProfile(db, c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		var today struct {
			Count    int64
			Earnings float64
		}
		if err := db.Model(&models.Delivery{}).
			Select("COUNT(*) AS count, COALESCE(SUM(boda_earnings), 0) AS earnings").
			Where("boda_id = ? AND status = ? AND actual_delivery_time >= ?",
				profile.ID, models.DeliveryStatusDelivered, startOfDay).
			Scan(&today).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"today_deliveries": today.Count,
			"today_earnings":   today.Earnings,
			"total_deliveries": profile.TotalDeliveries,
			"total_earnings":   profile.TotalEarnings,
			"rating":           profile.Rating,
		})
	}
}
