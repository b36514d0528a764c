package middleware

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/config"
)

// CORSMiddleware returns a CORS middleware configured for the environment
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	log.Printf("[CORS] Environment: %s, FrontendURL: %s", cfg.Environment, cfg.FrontendURL)

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "Authorization",
			"Accept", "Cache-Control", "X-Requested-With", RequestIDHeader,
		},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.Environment == "development" {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	} else {
		corsConfig.AllowOrigins = []string{}
	}
	if cfg.FrontendURL != "" && !containsString(corsConfig.AllowOrigins, cfg.FrontendURL) {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, cfg.FrontendURL)
	}
	if cfg.Environment != "development" {
		log.Printf("[CORS] Production allowed origins: %v", corsConfig.AllowOrigins)
	}

	return cors.New(corsConfig)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
