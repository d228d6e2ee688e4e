package deliveryControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Big-pappi/sk-project/httperr"
	"github.com/Big-pappi/sk-project/logger"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /boda/deliveries/available
func GetAvailableDeliveries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var deliveries []models.Delivery
		if err := db.Preload("Order").Preload("Order.Shop").
			Where("status = ? AND boda_id IS NULL", models.DeliveryStatusPending).
			Order("created_at DESC").
			Find(&deliveries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}

// GET /boda/deliveries
func GetMyDeliveries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := bodaProfile(db, c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		query := db.Preload("Order").Preload("Order.Shop").
			Where("boda_id = ?", profile.ID).
			Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var deliveries []models.Delivery
		if err := query.Find(&deliveries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}

// GET /boda/deliveries/active
// Returns the rider's delivery currently in an active state, or null.
func GetActiveDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := bodaProfile(db, c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		var delivery models.Delivery
		err = db.Preload("Order").Preload("Order.Shop").Preload("Order.Items").
			Where("boda_id = ? AND status IN ?", profile.ID, models.ActiveDeliveryStatuses).
			First(&delivery).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery"})
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

// AcceptDelivery assigns a pending, unassigned delivery to the rider.
// Requires a verified, available rider with no other active delivery; the
// single-active-delivery invariant is re-checked inside the transaction,
// with the delivery row locked, so two concurrent accepts cannot both win.
func AcceptDelivery(db *gorm.DB, userID, deliveryID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var profile models.BodaProfile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Boda profile not found")
			}
			return err
		}

		if !profile.IsVerified {
			return httperr.Forbidden("Your profile is not verified")
		}
		if !profile.IsAvailable {
			return httperr.Conflict("You are not available")
		}

		var active int64
		if err := tx.Model(&models.Delivery{}).
			Where("boda_id = ? AND status IN ?", profile.ID, models.ActiveDeliveryStatuses).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return httperr.Conflict("You already have an active delivery")
		}

		var delivery models.Delivery
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ? AND boda_id IS NULL", deliveryID, models.DeliveryStatusPending).
			First(&delivery).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Delivery not available")
			}
			return err
		}

		delivery.BodaID = &profile.ID
		delivery.Status = models.DeliveryStatusAssigned
		delivery.BodaEarnings = delivery.DeliveryFee * models.BodaEarningsRate
		if err := tx.Save(&delivery).Error; err != nil {
			return err
		}

		orderStatus, _ := MirroredOrderStatus(models.DeliveryStatusAssigned)
		return tx.Model(&models.Order{}).Where("id = ?", delivery.OrderID).
			Update("status", orderStatus).Error
	})
}

// POST /deliveries/:id/accept
func AcceptDeliveryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := AcceptDelivery(db, userID, c.Param("id")); err != nil {
			httperr.Respond(c, err)
			return
		}

		logger.Log.Info("delivery accepted",
			zap.String("delivery_id", c.Param("id")),
			zap.String("user_id", userID),
		)
		c.JSON(http.StatusOK, gin.H{"message": "Delivery accepted"})
	}
}

// AdvanceDelivery moves one of the rider's deliveries along the allowed
// transition set and mirrors the change onto the order. All delivery,
// order, and rider-stat writes for one transition commit together.
func AdvanceDelivery(db *gorm.DB, userID, deliveryID string, target models.DeliveryStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var profile models.BodaProfile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Boda profile not found")
			}
			return err
		}

		var delivery models.Delivery
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND boda_id = ?", deliveryID, profile.ID).
			First(&delivery).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Delivery not found")
			}
			return err
		}

		if !CanTransition(delivery.Status, target) {
			return httperr.Conflict("Invalid status transition")
		}

		now := time.Now()
		delivery.Status = target
		switch target {
		case models.DeliveryStatusPickedUp:
			delivery.ActualPickupTime = &now
		case models.DeliveryStatusDelivered:
			delivery.ActualDeliveryTime = &now
		}
		if err := tx.Save(&delivery).Error; err != nil {
			return err
		}

		if orderStatus, ok := MirroredOrderStatus(target); ok {
			if err := tx.Model(&models.Order{}).Where("id = ?", delivery.OrderID).
				Update("status", orderStatus).Error; err != nil {
				return err
			}
		}

		if target == models.DeliveryStatusDelivered {
			if err := tx.Model(&models.BodaProfile{}).Where("id = ?", profile.ID).
				Updates(map[string]interface{}{
					"total_deliveries": gorm.Expr("total_deliveries + 1"),
					"total_earnings":   gorm.Expr("total_earnings + ?", delivery.BodaEarnings),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PATCH /deliveries/:id/status
func UpdateDeliveryStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req UpdateDeliveryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		target := models.DeliveryStatus(req.Status)
		if err := AdvanceDelivery(db, userID, c.Param("id"), target); err != nil {
			httperr.Respond(c, err)
			return
		}

		logger.Log.Info("delivery status updated",
			zap.String("delivery_id", c.Param("id")),
			zap.String("status", req.Status),
			zap.String("user_id", userID),
		)
		c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated to " + req.Status})
	}
}
