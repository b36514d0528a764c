package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/audit"
	"github.com/hridaya423/shiba-sub001/internal/ratelimit"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthCheck reports uptime and which optional backends are wired. The
// API stays healthy without them; Airtable is not probed.
func HealthCheck(limiter *ratelimit.Limiter, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "shiba-api",
			"version": version,
			"uptime":  time.Since(startTime).Round(time.Second).String(),
			"backends": gin.H{
				"throttle": limiter.Enabled(),
				"audit":    auditLog.Enabled(),
			},
		})
	}
}
