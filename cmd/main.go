package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/config"
	"github.com/levelup/levelup-backend/database"
	"github.com/levelup/levelup-backend/internal/notification"
	"github.com/levelup/levelup-backend/routes"
	"github.com/levelup/levelup-backend/utils"
)

// @title LevelUp API
// @version 1.0
// @description Gaming event scheduling for tabletop gamers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Init Redis
	rdb, err := utils.InitRedis(cfg)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, rate limits stay in memory: %v", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Init Kafka
	publisher := notification.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()
	if len(cfg.KafkaBrokers) > 0 {
		log.Printf("✅ Publishing event notifications to %s", cfg.KafkaTopic)
	} else {
		log.Println("ℹ️ KAFKA_BROKERS not set, event notifications disabled")
	}

	if !cfg.EnforceOrganizer {
		log.Println("⚠️ EVENTS_ENFORCE_ORGANIZER=false: any gamer may update or delete any event")
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	routes.Setup(router, cfg, routes.Deps{
		DB:        db,
		Redis:     rdb,
		Publisher: publisher,
	})

	log.Printf("🚀 Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
