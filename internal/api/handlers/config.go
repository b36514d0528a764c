package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/config"
)

// GetConfig returns minimal config values required by frontend
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"environment":          cfg.Environment,
			"hackatime_start_date": cfg.HackatimeStartDate,
		})
	}
}
