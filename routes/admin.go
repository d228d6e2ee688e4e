package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/Big-pappi/sk-project/controllers/admin"
	productControllers "github.com/Big-pappi/sk-project/controllers/product"
	"github.com/Big-pappi/sk-project/middleware"
)

// SetupAdminRoutes registers the back-office endpoints. Protected by the
// X-API-KEY header rather than JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.GET("/shops", adminControllers.GetAllShops(db))
		adminGroup.GET("/orders", adminControllers.GetAllOrders(db))
		adminGroup.GET("/payments", adminControllers.GetAllPayments(db))

		adminGroup.POST("/shops/:id/verify", adminControllers.VerifyShop(db))
		adminGroup.POST("/boda/:id/verify", adminControllers.VerifyBoda(db))

		adminGroup.GET("/orders/export-excel", adminControllers.ExportOrdersToExcel(db))

		adminGroup.POST("/categories", productControllers.CreateCategory(db))
		adminGroup.PUT("/categories/:id", productControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", productControllers.DeleteCategory(db))
	}
}
