package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/auth"
	"github.com/Big-pappi/sk-project/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))

		me := authGroup.Group("/me")
		me.Use(middleware.ValidateToken)
		{
			me.GET("", auth.MeHandler(db))
			me.PATCH("", auth.UpdateMeHandler(db))
		}
	}
}
