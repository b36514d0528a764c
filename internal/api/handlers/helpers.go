package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
)

// respondMessage writes the { message } envelope used for client errors.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondUpstreamError logs err and returns a generic 500. Upstream detail
// never reaches the client.
func respondUpstreamError(c *gin.Context, tag string, err error) {
	if airtable.IsAuthError(err) {
		log.Printf("[%s] Airtable rejected the API key on %s %s, check AIRTABLE_API_KEY scopes: %v", tag, c.Request.Method, c.Request.URL.Path, err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	log.Printf("[%s] %s %s failed: %v", tag, c.Request.Method, c.Request.URL.Path, err)
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}

// MethodNotAllowed answers requests that match a route under another method.
func MethodNotAllowed(c *gin.Context) {
	respondMessage(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	respondMessage(c, http.StatusNotFound, "Not found")
}

// tokenRequest is the body of every token-authenticated handler.
type tokenRequest struct {
	Token string `json:"token"`
}
