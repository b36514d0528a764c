package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Airtable
	AirtableAPIKey         string
	AirtableBaseID         string
	AirtableAPIURL         string
	AirtableTimeoutSecs    int
	AirtablePageSize       int
	AirtableMaxScanRecords int

	// Airtable tables
	UsersTable     string
	OrdersTable    string
	ShopTable      string
	PlaytestsTable string
	GamesTable     string
	PostsTable     string

	// Hackatime
	HackatimeAPIURL      string
	HackatimeAPIKey      string
	HackatimeStartDate   string
	HackatimeTimeoutSecs int

	// Redis (submission throttle)
	RedisURL                 string
	PlaytestRateLimitSeconds int

	// Postgres (audit trail)
	DatabaseURL    string
	MigrateOnStart bool

	// Admin
	AdminJWTSecret     string
	AdminTokenTTLHours int

	// Game builds served under each isolated prefix, with cross-origin
	// isolation headers. Empty disables static serving.
	PlayBuildsDir string
	IsolatedPaths []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Airtable
		AirtableAPIKey:         getEnv("AIRTABLE_API_KEY", ""),
		AirtableBaseID:         getEnv("AIRTABLE_BASE_ID", ""),
		AirtableAPIURL:         getEnv("AIRTABLE_API_URL", "https://api.airtable.com/v0"),
		AirtableTimeoutSecs:    getEnvInt("AIRTABLE_TIMEOUT_SECONDS", 20),
		AirtablePageSize:       getEnvInt("AIRTABLE_PAGE_SIZE", 100),
		AirtableMaxScanRecords: getEnvInt("AIRTABLE_MAX_SCAN_RECORDS", 5000),

		UsersTable:     getEnv("AIRTABLE_USERS_TABLE", "Users"),
		OrdersTable:    getEnv("AIRTABLE_ORDERS_TABLE", "Orders"),
		ShopTable:      getEnv("AIRTABLE_SHOP_TABLE", "ShopItems"),
		PlaytestsTable: getEnv("AIRTABLE_PLAYTESTS_TABLE", "PlaytestTickets"),
		GamesTable:     getEnv("AIRTABLE_GAMES_TABLE", "Games"),
		PostsTable:     getEnv("AIRTABLE_POSTS_TABLE", "Posts"),

		// Hackatime
		HackatimeAPIURL:      getEnv("HACKATIME_API_URL", "https://hackatime.hackclub.com/api/v1"),
		HackatimeAPIKey:      getEnv("HACKATIME_API_KEY", ""),
		HackatimeStartDate:   getEnv("HACKATIME_START_DATE", "2025-08-18"),
		HackatimeTimeoutSecs: getEnvInt("HACKATIME_TIMEOUT_SECONDS", 15),

		// Redis
		RedisURL:                 getEnv("REDIS_URL", ""),
		PlaytestRateLimitSeconds: getEnvInt("PLAYTEST_RATE_LIMIT_SECONDS", 5),

		// Postgres
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnv("MIGRATE_ON_START", "false") == "true",

		// Admin
		AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),
		AdminTokenTTLHours: getEnvInt("ADMIN_TOKEN_TTL_HOURS", 24),

		PlayBuildsDir: getEnv("PLAY_BUILDS_DIR", ""),
		IsolatedPaths: getEnvList("ISOLATED_PATHS", []string{"/play/", "/playtest/"}),
	}
}

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if c.AirtableAPIKey == "" || c.AirtableBaseID == "" {
		return errors.New("AIRTABLE_API_KEY and AIRTABLE_BASE_ID must be set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
