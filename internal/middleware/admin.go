package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/adminauth"
)

const adminSubjectKey = "admin_subject"

// AdminAuth requires a valid admin bearer JWT. With no secret configured
// the admin routes are closed.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
			return
		}
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := adminauth.Verify(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			log.Printf("[ADMIN] rejected token from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(adminSubjectKey, claims.Subject)
		c.Next()
	}
}

// GetAdminSubject returns the subject of the verified admin token.
func GetAdminSubject(c *gin.Context) string {
	return c.GetString(adminSubjectKey)
}
