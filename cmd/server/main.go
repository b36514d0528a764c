package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/api"
	"github.com/hridaya423/shiba-sub001/internal/audit"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/hridaya423/shiba-sub001/internal/hackatime"
	"github.com/hridaya423/shiba-sub001/internal/migrations"
	"github.com/hridaya423/shiba-sub001/internal/ratelimit"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	deps := api.Deps{
		Store:     airtable.NewClient(cfg),
		Hackatime: hackatime.NewClient(cfg),
	}
	log.Printf("[AIRTABLE] Client initialized (base=%s)", cfg.AirtableBaseID)

	// Redis is optional; without it playtest submissions are not throttled
	if cfg.RedisURL != "" {
		rdb, err := ratelimit.Connect(cfg.RedisURL)
		if err != nil {
			log.Printf("[RATELIMIT] Redis unavailable, throttling disabled: %v", err)
		} else {
			defer rdb.Close()
			deps.Rdb = rdb
		}
	} else {
		log.Printf("[RATELIMIT] REDIS_URL not set, throttling disabled")
	}

	// Postgres is optional; without it the audit trail is off
	if cfg.DatabaseURL != "" {
		if cfg.MigrateOnStart {
			log.Println("[MIGRATE] Running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL, migrations.DefaultDir); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}
		db, err := audit.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		deps.DB = db
	} else {
		log.Printf("[AUDIT] DATABASE_URL not set, audit trail disabled")
	}

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	api.SetupRoutes(router, deps, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting shiba API on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
