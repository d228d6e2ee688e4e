package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Big-pappi/sk-project/httperr"
	"github.com/Big-pappi/sk-project/logger"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

// ShopDraft is the planned order for one shop of a checkout: that shop's
// cart lines plus the computed totals.
type ShopDraft struct {
	Shop        models.Shop
	Lines       []models.CartItem
	Subtotal    float64
	DeliveryFee float64
	PlatformFee float64
	Total       float64
}

// SplitCartByShop groups cart lines by the shop owning each product and
// computes per-shop totals. Lines must have Product.Shop preloaded.
// Shops keep the order in which they first appear in the cart.
func SplitCartByShop(items []models.CartItem) []ShopDraft {
	index := map[string]int{}
	var drafts []ShopDraft

	for _, item := range items {
		shopID := item.Product.ShopID
		i, seen := index[shopID]
		if !seen {
			i = len(drafts)
			index[shopID] = i
			drafts = append(drafts, ShopDraft{Shop: item.Product.Shop})
		}
		drafts[i].Lines = append(drafts[i].Lines, item)
		drafts[i].Subtotal += item.Product.EffectivePrice() * float64(item.Quantity)
	}

	for i := range drafts {
		drafts[i].DeliveryFee = models.DeliveryFee
		drafts[i].PlatformFee = drafts[i].Subtotal * models.PlatformFeeRate
		drafts[i].Total = drafts[i].Subtotal + drafts[i].DeliveryFee + drafts[i].PlatformFee
	}
	return drafts
}

// CheckStock verifies every cart line against the given live stock counts.
// Any shortfall rejects the whole checkout.
func CheckStock(items []models.CartItem, stock map[string]int) error {
	for _, item := range items {
		available, ok := stock[item.ProductID]
		if !ok {
			return httperr.BadRequest("Product no longer available: " + item.Product.Name)
		}
		if item.Quantity > available {
			return httperr.BadRequest("Not enough stock for " + item.Product.Name)
		}
	}
	return nil
}

// PlaceOrder turns the user's cart into one order per shop. The whole
// checkout is a single transaction: product rows are locked, stock is
// re-checked under the lock, and either every shop's order is created or
// none is. The cart is cleared only on commit.
func PlaceOrder(db *gorm.DB, userID string, req CreateOrderRequest) ([]models.Order, error) {
	var orders []models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Preload("Product.Shop").
			Where("user_id = ?", userID).
			Order("created_at").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return httperr.BadRequest("Cart is empty")
		}

		productIDs := make([]string, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		var products []models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).
			Find(&products).Error; err != nil {
			return err
		}

		stock := make(map[string]int, len(products))
		for _, p := range products {
			stock[p.ID] = p.StockQuantity
		}
		if err := CheckStock(items, stock); err != nil {
			return err
		}

		for _, draft := range SplitCartByShop(items) {
			order := models.Order{
				UserID:          userID,
				ShopID:          draft.Shop.ID,
				Status:          models.OrderStatusPending,
				Subtotal:        draft.Subtotal,
				DeliveryFee:     draft.DeliveryFee,
				PlatformFee:     draft.PlatformFee,
				TotalAmount:     draft.Total,
				DeliveryAddress: req.DeliveryAddress,
				Phone:           req.Phone,
				Notes:           req.Notes,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			for _, line := range draft.Lines {
				price := line.Product.EffectivePrice()
				image := ""
				if len(line.Product.Images) > 0 {
					image = line.Product.Images[0]
				}
				productID := line.ProductID
				item := models.OrderItem{
					OrderID:      order.ID,
					ProductID:    &productID,
					ProductName:  line.Product.Name,
					ProductImage: image,
					Quantity:     line.Quantity,
					UnitPrice:    price,
					TotalPrice:   price * float64(line.Quantity),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				order.Items = append(order.Items, item)

				if err := tx.Model(&models.Product{}).
					Where("id = ?", line.ProductID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity)).
					Error; err != nil {
					return err
				}
			}

			payment := models.Payment{
				OrderID: order.ID,
				Amount:  draft.Total,
				Method:  req.PaymentMethod,
				Status:  models.PaymentStatusPending,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			delivery := models.Delivery{
				OrderID:         order.ID,
				Status:          models.DeliveryStatusPending,
				PickupAddress:   draft.Shop.Address,
				PickupLatitude:  draft.Shop.Latitude,
				PickupLongitude: draft.Shop.Longitude,
				DeliveryAddress: req.DeliveryAddress,
				DeliveryFee:     draft.DeliveryFee,
			}
			if err := tx.Create(&delivery).Error; err != nil {
				return err
			}

			orders = append(orders, order)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		orders, err := PlaceOrder(db, userID, req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		orderIDs := make([]string, 0, len(orders))
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID)
			broadcastNewOrder(o)
		}

		logger.Log.Info("checkout completed",
			zap.String("user_id", userID),
			zap.Int("orders", len(orders)),
			zap.Strings("order_ids", orderIDs),
		)

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order(s) created successfully",
			"order_ids": orderIDs,
		})
	}
}
