package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

type ReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment"`
	OrderID *string `json:"order_id"`
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Where("product_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /products/:id/reviews
// Creating a review also recomputes the owning shop's rating as the mean
// of all reviews attached to that shop.
func CreateProductReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: &product.ID,
			ShopID:    &product.ShopID,
			OrderID:   req.OrderID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			var avg float64
			if err := tx.Model(&models.Review{}).
				Select("COALESCE(AVG(rating), 0)").
				Where("shop_id = ?", product.ShopID).
				Scan(&avg).Error; err != nil {
				return err
			}
			return tx.Model(&models.Shop{}).Where("id = ?", product.ShopID).
				Update("rating", avg).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}
