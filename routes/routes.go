package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/config"
	"github.com/levelup/levelup-backend/internal/auditlog"
	"github.com/levelup/levelup-backend/internal/auth"
	"github.com/levelup/levelup-backend/internal/event"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
	"github.com/levelup/levelup-backend/internal/notification"
	"github.com/levelup/levelup-backend/internal/reports"
	"github.com/levelup/levelup-backend/middleware"
	"github.com/levelup/levelup-backend/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "github.com/levelup/levelup-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the shared connections the routes are built on. Redis may be nil.
type Deps struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher notification.Publisher
}

func healthHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "OK", "database": "up", "redis": "disabled"}
		code := http.StatusOK

		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["status"] = "DEGRADED"
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if deps.Redis != nil {
			status["redis"] = "up"
			if err := utils.PingRedis(c.Request.Context(), deps.Redis); err != nil {
				status["status"] = "DEGRADED"
				status["redis"] = "down"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, status)
	}
}

func Setup(r *gin.Engine, cfg *config.Config, deps Deps) {
	// X-Forwarded-For is only believed from these peers; none by default
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Printf("⚠️ Invalid TRUSTED_PROXIES %v, trusting none: %v", cfg.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID())

	health := healthHandler(deps)
	r.GET("/health", health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, deps.Redis))
	api.Use(middleware.ClientIP())
	api.GET("/health", health)

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(deps.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Gamers ==========
	gamerRepo := gamer.NewRepository(deps.DB)
	gamerSvc := gamer.NewService(gamerRepo)
	gamerHandler := gamer.NewHandler(gamerSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(deps.DB)
	authSvc := auth.NewService(authRepo, gamerSvc, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	protected.GET("/gamers/me", gamerHandler.Me)

	// ========== Game Types ==========
	gameTypeRepo := gametype.NewRepository(deps.DB)
	gameTypeHandler := gametype.NewHandler(gameTypeRepo)
	protected.GET("/gametypes", gameTypeHandler.List)
	protected.GET("/gametypes/:id", gameTypeHandler.Get)

	// ========== Games ==========
	gameSvc := game.NewService(game.NewRepository(deps.DB), gameTypeRepo, gamerSvc)
	gameHandler := game.NewHandler(gameSvc)
	gameRoutes := protected.Group("/games")
	{
		gameRoutes.GET("", gameHandler.List)
		gameRoutes.POST("", gameHandler.Create)
		gameRoutes.GET("/:id", gameHandler.Get)
	}

	// ========== Events ==========
	eventSvc := event.NewService(event.NewRepository(deps.DB), gameSvc, gamerSvc, auditSvc, deps.Publisher)
	eventSvc.EnforceOrganizer = cfg.EnforceOrganizer
	eventHandler := event.NewHandler(eventSvc)
	eventRoutes := protected.Group("/events")
	{
		eventRoutes.GET("", eventHandler.ListEvents)
		eventRoutes.POST("", eventHandler.CreateEvent)
		eventRoutes.GET("/:id", eventHandler.GetEventByID)
		eventRoutes.PUT("/:id", eventHandler.UpdateEvent)
		eventRoutes.DELETE("/:id", eventHandler.DeleteEvent)
		eventRoutes.POST("/:id/signup", eventHandler.Signup)
		eventRoutes.DELETE("/:id/leave", eventHandler.Leave)
		eventRoutes.GET("/:id/attendees", eventHandler.ListAttendees)
	}

	// ========== Audit Logs (own rows; ADMIN_EMAILS see all) ==========
	auditRoutes := protected.Group("/audit-logs")
	{
		auditRoutes.GET("", auditHandler.GetAuditLogs)
		auditRoutes.GET("/:id", auditHandler.GetAuditLogByID)
	}

	// ========== Reports ==========
	reportHandler := reports.NewHandler(eventSvc, reports.NewReportExporter())
	protected.GET("/reports/events", reportHandler.GetEventsReport)
}
