package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iic-bit/IIC-Backend/config"
	"github.com/iic-bit/IIC-Backend/database"
	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/auth"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/internal/idea"
	"github.com/iic-bit/IIC-Backend/internal/notice"
	"github.com/iic-bit/IIC-Backend/internal/notification"
	"github.com/iic-bit/IIC-Backend/internal/participant"
	"github.com/iic-bit/IIC-Backend/internal/payment"
	"github.com/iic-bit/IIC-Backend/routes"
	"github.com/iic-bit/IIC-Backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis; registration falls back to an in-process lock without it.
	var locker utils.EventLocker
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis init failed: %v", err)
		log.Println("ℹ️ Falling back to in-process registration locks")
		locker = utils.NewLocalEventLocker()
	} else {
		locker = utils.NewRedisEventLocker(utils.RedisClient)
	}

	// Init Kafka (optional)
	utils.InitializeKafka(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&auditlog.AuditLog{},
		&event.Event{},
		&participant.Participant{},
		&payment.Payment{},
		&idea.Idea{},
		&notice.Notice{},
		&notice.SiteData{},
		&notification.InAppNotification{},
		&notification.NotificationLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed the organizer account
	if err := auth.SeedAdminUser(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin user: %v", err))
	}

	// Registration event consumer
	notificationRepo := notification.NewRepository(db)
	notificationSvc := notification.NewService(notificationRepo, cfg)
	notification.StartKafkaConsumer(notificationSvc)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded event posters and idea attachments
	if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
		panic(fmt.Sprintf("❌ Failed to create upload directory: %v", err))
	}
	router.Static("/uploads", cfg.UploadPath)

	routes.Setup(router, cfg, locker, notificationSvc)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	fmt.Printf("🚀 Server starting on port %s\n", port)
	if err := router.Run(":" + port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
