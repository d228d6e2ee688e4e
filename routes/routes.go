package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Customer routes (JWT-protected)
	SetupCustomerRoutes(r, db)

	// Seller routes (JWT + seller role)
	SetupSellerRoutes(r, db)

	// Boda rider routes (JWT + boda role)
	SetupBodaRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
