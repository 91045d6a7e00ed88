package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iic-bit/IIC-Backend/config"
	"github.com/iic-bit/IIC-Backend/database"
	_ "github.com/iic-bit/IIC-Backend/docs"
	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/auth"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/internal/idea"
	"github.com/iic-bit/IIC-Backend/internal/notice"
	"github.com/iic-bit/IIC-Backend/internal/notification"
	"github.com/iic-bit/IIC-Backend/internal/participant"
	"github.com/iic-bit/IIC-Backend/internal/payment"
	"github.com/iic-bit/IIC-Backend/internal/reports"
	"github.com/iic-bit/IIC-Backend/middleware"
	"github.com/iic-bit/IIC-Backend/utils"
)

func Setup(r *gin.Engine, cfg *config.Config, locker utils.EventLocker, notificationSvc notification.Service) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc, cfg.UploadPath)

	// ========== Participants (registration core) ==========
	participantRepo := participant.NewRepository(database.DB)
	validator := participant.NewValidator(cfg.MaxTeamParticipants)
	gen := participant.DefaultGroupIDGenerator()
	participantSvc := participant.NewService(participantRepo, eventSvc, validator, gen, locker, auditSvc)
	participantHandler := participant.NewHandler(participantSvc)

	// ========== Reports ==========
	exporter := reports.NewRegistrationExporter()
	reportsHandler := reports.NewHandler(eventSvc, participantRepo, exporter, auditSvc)

	// ========== Payments ==========
	paymentRepo := payment.NewRepository(database.DB)
	paymentSvc := payment.NewService(paymentRepo, eventSvc, cfg, auditSvc)
	paymentHandler := payment.NewHandler(paymentSvc)

	// ========== Ideas & Notices ==========
	ideaHandler := idea.NewHandler(idea.NewRepository(database.DB), cfg.UploadPath)
	noticeHandler := notice.NewHandler(notice.NewRepository(database.DB))

	// ========== Notifications ==========
	notificationHandler := notification.NewHandler(notificationSvc)

	// Public routes. Registration itself is attendee-facing and stays
	// unauthenticated.
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEventByID)
	api.POST("/events/:id/participants", participantHandler.Register)
	api.GET("/events/:id/participants", participantHandler.ListByEvent)
	api.POST("/events/:id/payments/order", paymentHandler.CreateOrder)
	api.POST("/payments/verify", paymentHandler.VerifyPayment)
	api.GET("/ideas", ideaHandler.ListIdeas)
	api.POST("/ideas", ideaHandler.CreateIdea)
	api.GET("/notices", noticeHandler.ListNotices)
	api.GET("/sitedata", noticeHandler.ListSiteData)

	// Authenticated routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	protected.GET("/notifications", notificationHandler.ListMine)
	protected.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	// Organizer routes
	admin := protected.Group("/")
	admin.Use(middleware.RBACMiddleware(auth.RoleAdmin))
	{
		admin.POST("/events", eventHandler.CreateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)
		admin.GET("/events/:id/participants/export", reportsHandler.ExportParticipants)
		admin.GET("/events/:id/payments", paymentHandler.ListByEvent)

		admin.DELETE("/ideas/:id", ideaHandler.DeleteIdea)

		admin.POST("/notices", noticeHandler.CreateNotice)
		admin.PUT("/notices/:id", noticeHandler.UpdateNotice)
		admin.DELETE("/notices/:id", noticeHandler.DeleteNotice)
		admin.POST("/sitedata", noticeHandler.UpsertSiteData)
		admin.DELETE("/sitedata/:key", noticeHandler.DeleteSiteData)

		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
		admin.GET("/auditlogs/:id", auditHandler.GetAuditLogByID)
	}
}
