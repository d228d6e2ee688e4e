package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Big-pappi/sk-project/logger"
	"github.com/Big-pappi/sk-project/models"
	"github.com/Big-pappi/sk-project/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	logger.Log.Info("✅ Starting application...")

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.BodaProfile{},
		&models.Delivery{},
	); err != nil {
		logger.Log.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}

	// Gin setup
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info("🚀 Server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
		if err != nil {
			logger.Log.Fatal("❌ DB connection failed", zap.Error(err))
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Fatal("❌ Failed to connect DB", zap.Error(err))
	}
	return db
}
