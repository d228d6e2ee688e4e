package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

// GET /products
// Filters: category, shop, search, featured; paginated with page/limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Shop").Where("products.is_active = ?", true)

		if categoryID := c.Query("category"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if shopID := c.Query("shop"); shopID != "" {
			query = query.Where("shop_id = ?", shopID)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
		if c.Query("featured") == "true" {
			query = query.Where("is_featured = ?", true)
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit < 1 || limit > 100 {
			limit = 20
		}

		var total int64
		if err := query.Model(&models.Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Offset((page - 1) * limit).Limit(limit).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    total,
			"page":     page,
			"limit":    limit,
		})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Shop").
			Where("id = ? AND is_active = ?", c.Param("id"), true).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type ProductRequest struct {
	CategoryID    *string  `json:"category_id"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountPrice *float64 `json:"discount_price"`
	StockQuantity int      `json:"stock_quantity"`
	Images        []string `json:"images"`
	IsActive      *bool    `json:"is_active"`
	IsFeatured    *bool    `json:"is_featured"`
}

// sellerShop resolves the authenticated seller's shop.
func sellerShop(db *gorm.DB, c *gin.Context) (*models.Shop, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You do not have a shop yet"})
		return nil, false
	}
	return &shop, true
}

// POST /seller/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, ok := sellerShop(db, c)
		if !ok {
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ShopID:        shop.ID,
			CategoryID:    req.CategoryID,
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			DiscountPrice: req.DiscountPrice,
			StockQuantity: req.StockQuantity,
			Images:        req.Images,
			IsActive:      true,
		}
		if req.IsFeatured != nil {
			product.IsFeatured = *req.IsFeatured
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /seller/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, ok := sellerShop(db, c)
		if !ok {
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.CategoryID = req.CategoryID
		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price
		product.DiscountPrice = req.DiscountPrice
		product.StockQuantity = req.StockQuantity
		if req.Images != nil {
			product.Images = req.Images
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.IsFeatured != nil {
			product.IsFeatured = *req.IsFeatured
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /seller/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, ok := sellerShop(db, c)
		if !ok {
			return
		}

		result := db.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).
			Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
