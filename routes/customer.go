package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Big-pappi/sk-project/controllers/cart"
	orderControllers "github.com/Big-pappi/sk-project/controllers/order"
	productControllers "github.com/Big-pappi/sk-project/controllers/product"
	shopControllers "github.com/Big-pappi/sk-project/controllers/shop"
	"github.com/Big-pappi/sk-project/middleware"
)

// SetupCustomerRoutes registers the public catalog plus the JWT-protected
// cart and order endpoints.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", productControllers.GetProductReviews(db))
	r.GET("/categories", productControllers.GetCategories(db))
	r.GET("/shops", shopControllers.GetShops(db))
	r.GET("/shops/:id", shopControllers.GetShopByID(db))

	// ──────────────── Live Order Feed ────────────────
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.GET("/count", cartControllers.GetCartCount(db))
		cartGroup.POST("/add", cartControllers.AddCartItem(db))
		cartGroup.PATCH("/update/:id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/remove/:id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}

	// ──────────────── Orders ────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("", orderControllers.CreateOrderHandler(db))
		orderGroup.GET("", orderControllers.GetMyOrdersHandler(db))
		orderGroup.GET("/:id", orderControllers.GetOrderHandler(db))
		orderGroup.POST("/:id/cancel", orderControllers.CancelOrderHandler(db))
		orderGroup.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
	}

	// ──────────────── Reviews ────────────────
	r.POST("/products/:id/reviews", middleware.ValidateToken, productControllers.CreateProductReview(db))
}
