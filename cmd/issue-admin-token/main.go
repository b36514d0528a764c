package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hridaya423/shiba-sub001/internal/adminauth"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.AdminJWTSecret == "" {
		log.Fatalf("ADMIN_JWT_SECRET must be set")
	}

	subject := os.Getenv("ADMIN_SUBJECT")
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}
	if subject == "" {
		subject = "admin"
		log.Printf("Using default admin subject: %s", subject)
	}

	ttl := time.Duration(cfg.AdminTokenTTLHours) * time.Hour
	token, err := adminauth.Issue(cfg.AdminJWTSecret, subject, ttl)
	if err != nil {
		log.Fatalf("Failed to issue admin token: %v", err)
	}

	log.Printf("✓ Admin token issued for %s (expires in %s)", subject, ttl)
	fmt.Println(token)
}
