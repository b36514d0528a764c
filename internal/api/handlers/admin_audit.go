package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/audit"
)

// GetAuditLogs returns paginated audit log entries
func GetAuditLogs(auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		action := c.DefaultQuery("action", "")
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if limit <= 0 {
			limit = 25
		}
		if limit > 200 {
			limit = 200
		}
		if offset < 0 {
			offset = 0
		}

		entries, total, err := auditLog.Recent(c.Request.Context(), action, limit, offset)
		if err != nil {
			log.Printf("[ADMIN] Failed to fetch audit logs: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"logs":    entries,
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"enabled": auditLog.Enabled(),
		})
	}
}
