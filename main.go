package main

import (
	"context"
	"log"
	"time"

	"live-backend/config"
	"live-backend/database"
	"live-backend/handlers"
	"live-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	db := database.GetDB()

	// The page cache is optional: without redis every listing is computed
	// directly.
	var pageCache *services.PageCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable (%v), continuing without page cache", err)
		} else {
			pageCache = services.NewPageCache(client, cfg.PageCacheTTL)
			log.Printf("Page cache enabled (TTL %s)", cfg.PageCacheTTL)
		}
		cancel()
	}

	metricsService := services.NewMetricsService(db)
	roomService := services.NewRoomService(db, cfg, metricsService, pageCache)
	userService := services.NewUserService(db, cfg, metricsService)
	contributorService := services.NewContributorService(db, cfg, metricsService)
	videoService := services.NewVideoService(db, cfg, metricsService)
	activityService := services.NewActivityService(db)

	roomHandler := handlers.NewRoomHandler(roomService, contributorService, cfg)
	userHandler := handlers.NewUserHandler(userService, cfg)
	videoHandler := handlers.NewVideoHandler(videoService, cfg)
	activityHandler := handlers.NewActivityHandler(activityService, cfg)

	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", roomHandler.HealthCheck)

		v1.GET("/rooms", roomHandler.ListRooms)
		v1.GET("/rooms/:id/contributors", roomHandler.ListContributors)
		v1.POST("/rooms/:id/messages", activityHandler.RecordMessage)
		v1.POST("/rooms/:id/views", activityHandler.RecordView)

		v1.GET("/users", userHandler.ListUsers)
		v1.GET("/videos", videoHandler.ListVideos)
	}

	log.Printf("Starting live-backend on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
