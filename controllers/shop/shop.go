package shopControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

type ShopRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description string  `json:"description"`
	LogoURL     string  `json:"logo_url"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone"`
}

// GET /shops
func GetShops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_active = ?", true)

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
		if verified := c.Query("verified"); verified != "" {
			query = query.Where("is_verified = ?", verified == "true")
		}

		var shops []models.Shop
		if err := query.Order("name").Find(&shops).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shops"})
			return
		}
		c.JSON(http.StatusOK, shops)
	}
}

// GET /shops/:id
func GetShopByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shop models.Shop
		if err := db.First(&shop, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop"})
			return
		}
		c.JSON(http.StatusOK, shop)
	}
}

// POST /seller/shop
// Sellers get exactly one shop; it starts unverified.
func CreateShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var existing models.Shop
		if err := db.Where("owner_id = ?", userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already have a shop"})
			return
		}

		var req ShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		shop := models.Shop{
			OwnerID:     userID,
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			LogoURL:     req.LogoURL,
			Address:     req.Address,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Phone:       req.Phone,
			IsActive:    true,
		}
		if err := db.Create(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop"})
			return
		}
		c.JSON(http.StatusCreated, shop)
	}
}

// GET /seller/shop
func GetMyShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var shop models.Shop
		if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a shop yet"})
			return
		}
		c.JSON(http.StatusOK, shop)
	}
}

// PATCH /seller/shop
func UpdateMyShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var shop models.Shop
		if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a shop yet"})
			return
		}

		var req ShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		shop.Name = req.Name
		shop.Slug = req.Slug
		shop.Description = req.Description
		shop.LogoURL = req.LogoURL
		shop.Address = req.Address
		shop.Latitude = req.Latitude
		shop.Longitude = req.Longitude
		shop.Phone = req.Phone

		if err := db.Save(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop"})
			return
		}
		c.JSON(http.StatusOK, shop)
	}
}

// GET /seller/shop/stats
func GetMyShopStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var shop models.Shop
		if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a shop yet"})
			return
		}

		var totalProducts, totalOrders, pendingOrders int64
		var totalRevenue float64

		if err := db.Model(&models.Product{}).Where("shop_id = ?", shop.ID).
			Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).Where("shop_id = ?", shop.ID).
			Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("shop_id = ? AND status = ?", shop.ID, models.OrderStatusPending).
			Count(&pendingOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Where("shop_id = ? AND status = ?", shop.ID, models.OrderStatusDelivered).
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"pending_orders": pendingOrders,
			"total_revenue":  totalRevenue,
		})
	}
}

// GET /seller/shop/orders
func GetMyShopOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var shop models.Shop
		if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a shop yet"})
			return
		}

		query := db.Preload("Items").
			Where("shop_id = ?", shop.ID).
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
