package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// APIContentSecurityPolicy is sent on every /api response.
const APIContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

// SecurityHeaders adds hardening headers to API responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-DNS-Prefetch-Control", "off")
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			h.Set("Content-Security-Policy", APIContentSecurityPolicy)
		}
		c.Next()
	}
}

// CrossOriginIsolation sets COOP/COEP on paths under the given prefixes.
// The embedded game runtime needs SharedArrayBuffer, which browsers only
// expose to cross-origin isolated documents.
func CrossOriginIsolation(prefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(path, p) {
				c.Header("Cross-Origin-Opener-Policy", "same-origin")
				c.Header("Cross-Origin-Embedder-Policy", "require-corp")
				break
			}
		}
		c.Next()
	}
}
