package api

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/api/handlers"
	"github.com/hridaya423/shiba-sub001/internal/audit"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/hridaya423/shiba-sub001/internal/hackatime"
	"github.com/hridaya423/shiba-sub001/internal/middleware"
	"github.com/hridaya423/shiba-sub001/internal/playtest"
	"github.com/hridaya423/shiba-sub001/internal/ratelimit"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Deps are the backends the routes are served from. Rdb and DB are
// optional; without them submissions are not throttled or audited.
type Deps struct {
	Store     airtable.Store
	Hackatime hackatime.ProjectSource
	Rdb       *redis.Client
	DB        *sqlx.DB
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Deps, cfg *config.Config) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)
	router.NoRoute(handlers.NotFound)

	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CrossOriginIsolation(cfg.IsolatedPaths))
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	limiter := ratelimit.New(deps.Rdb, time.Duration(cfg.PlaytestRateLimitSeconds)*time.Second)
	auditLog := audit.NewLogger(deps.DB)
	playtests := &playtest.Service{
		Store:          deps.Store,
		UsersTable:     cfg.UsersTable,
		PlaytestsTable: cfg.PlaytestsTable,
		Limiter:        limiter,
	}
	projects := &hackatime.Service{
		Source:     deps.Hackatime,
		Store:      deps.Store,
		GamesTable: cfg.GamesTable,
	}

	// Game builds, one static tree per isolated prefix.
	if cfg.PlayBuildsDir != "" {
		for _, prefix := range cfg.IsolatedPaths {
			if p := strings.TrimRight(prefix, "/"); p != "" {
				router.Static(p, cfg.PlayBuildsDir)
			}
		}
		log.Printf("[STATIC] Serving game builds from %s under %v", cfg.PlayBuildsDir, cfg.IsolatedPaths)
	}

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck(limiter, auditLog))
		api.GET("/config", handlers.GetConfig(cfg))

		api.GET("/GetShopItems", handlers.GetShopItems(deps.Store, cfg))
		api.POST("/GetMyOrders", handlers.GetMyOrders(deps.Store, cfg))
		api.POST("/getMyProfile", handlers.GetMyProfile(deps.Store, cfg))
		api.POST("/submitPlaytest", handlers.SubmitPlaytest(playtests, auditLog))
		api.GET("/hackatimeProjects", handlers.HackatimeProjects(projects))

		analytics := api.Group("/analytics")
		analytics.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			analytics.GET("/users", handlers.GetUserAnalytics(deps.Store, cfg))
			analytics.GET("/posts", handlers.GetPostAnalytics(deps.Store, cfg))
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			admin.GET("/audit", handlers.GetAuditLogs(auditLog))
		}
	}
}
