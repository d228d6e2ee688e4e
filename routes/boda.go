package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	deliveryControllers "github.com/Big-pappi/sk-project/controllers/delivery"
	"github.com/Big-pappi/sk-project/middleware"
	"github.com/Big-pappi/sk-project/models"
)

// SetupBodaRoutes registers the delivery dispatcher endpoints. Requires
// JWT with the boda role.
func SetupBodaRoutes(r *gin.Engine, db *gorm.DB) {
	bodaOnly := middleware.RequireRole(string(models.RoleBoda))

	bodaGroup := r.Group("/boda")
	bodaGroup.Use(middleware.ValidateToken, bodaOnly)
	{
		bodaGroup.GET("/profile", deliveryControllers.GetProfile(db))
		bodaGroup.PATCH("/profile", deliveryControllers.UpdateProfile(db))
		bodaGroup.GET("/stats", deliveryControllers.GetStats(db))

		bodaGroup.GET("/deliveries", deliveryControllers.GetMyDeliveries(db))
		bodaGroup.GET("/deliveries/available", deliveryControllers.GetAvailableDeliveries(db))
		bodaGroup.GET("/deliveries/active", deliveryControllers.GetActiveDelivery(db))
	}

	deliveryGroup := r.Group("/deliveries")
	deliveryGroup.Use(middleware.ValidateToken, bodaOnly)
	{
		deliveryGroup.POST("/:id/accept", deliveryControllers.AcceptDeliveryHandler(db))
		deliveryGroup.PATCH("/:id/status", deliveryControllers.UpdateDeliveryStatusHandler(db))
	}
}
