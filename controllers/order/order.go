package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Big-pappi/sk-project/logger"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Statuses a seller (or admin) may set directly. Everything past "ready"
// is driven by the delivery dispatcher.
var sellerStatuses = map[models.OrderStatus]bool{
	models.OrderStatusConfirmed: true,
	models.OrderStatusPreparing: true,
	models.OrderStatusReady:     true,
	models.OrderStatusCancelled: true,
}

// GET /orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		query := db.Preload("Shop").Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.Preload("Shop").Preload("Items").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:id/cancel
// Allowed only while the order is pending or confirmed. Restores each
// snapshot line's quantity to live stock (lines whose product has been
// deleted are skipped) and fails the still-pending delivery.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("Items").
				Where("id = ? AND user_id = ?", c.Param("id"), userID).
				First(&order).Error; err != nil {
				return err
			}

			if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
				return errCancelWindowClosed
			}

			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", models.OrderStatusCancelled).Error; err != nil {
				return err
			}

			// Pull the delivery out of the dispatch pool so a rider cannot
			// accept it after the stock is restored.
			if err := tx.Model(&models.Delivery{}).
				Where("order_id = ? AND status = ?", order.ID, models.DeliveryStatusPending).
				Update("status", models.DeliveryStatusFailed).Error; err != nil {
				return err
			}

			for _, item := range order.Items {
				if item.ProductID == nil {
					continue
				}
				if err := tx.Model(&models.Product{}).
					Where("id = ?", *item.ProductID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).
					Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, errCancelWindowClosed):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot cancel order at this stage"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}

		logger.Log.Info("order cancelled",
			zap.String("order_id", c.Param("id")),
			zap.String("user_id", userID),
		)
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

var errCancelWindowClosed = errors.New("cancel window closed")

// PATCH /orders/:id/status
// Sellers may only touch orders of their own shop; admins may touch any.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		role, _ := c.Get("role")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newStatus := models.OrderStatus(req.Status)
		if !sellerStatuses[newStatus] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		query := db.Preload("Shop")
		if role == string(models.RoleAdmin) {
			query = query.Where("id = ?", c.Param("id"))
		} else {
			query = query.
				Joins("JOIN shops ON shops.id = orders.shop_id").
				Where("orders.id = ? AND shops.owner_id = ?", c.Param("id"), userID)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
