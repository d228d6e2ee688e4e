package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Big-pappi/sk-project/controllers/product"
	shopControllers "github.com/Big-pappi/sk-project/controllers/shop"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

// SetupSellerRoutes registers shop management endpoints. Requires JWT
// with the seller (or admin) role.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerOnly := middleware.RequireRole(string(models.RoleSeller), string(models.RoleAdmin))

	shopGroup := r.Group("/seller/shop")
	shopGroup.Use(middleware.ValidateToken, sellerOnly)
	{
		shopGroup.POST("", shopControllers.CreateShop(db))
		shopGroup.GET("", shopControllers.GetMyShop(db))
		shopGroup.PATCH("", shopControllers.UpdateMyShop(db))
		shopGroup.GET("/stats", shopControllers.GetMyShopStats(db))
		shopGroup.GET("/orders", shopControllers.GetMyShopOrders(db))
	}

	productGroup := r.Group("/seller/products")
	productGroup.Use(middleware.ValidateToken, sellerOnly)
	{
		productGroup.POST("", productControllers.CreateProduct(db))
		productGroup.PUT("/:id", productControllers.UpdateProduct(db))
		productGroup.DELETE("/:id", productControllers.DeleteProduct(db))
	}
}
