package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"artizans_back_end/internal/cache"
	"artizans_back_end/internal/config"
	"artizans_back_end/internal/database"
	"artizans_back_end/internal/routes"
)

func main() {
	config.Load()
	cfg := config.New()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Could not connect to the database: %v", err)
	}
	defer db.Close(ctx)

	revoked, err := cache.New(ctx, cfg)
	if err != nil {
		// Without Redis, logout falls back to clearing the cookie only.
		log.Printf("⚠️  Redis unavailable, token revocation disabled: %v", err)
	}
	defer revoked.Close()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, cfg, db, revoked)

	log.Println("🚀 Artizans server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
