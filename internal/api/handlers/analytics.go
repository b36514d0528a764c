package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/analytics"
	"github.com/hridaya423/shiba-sub001/internal/config"
)

// GetUserAnalytics aggregates the whole Users table.
func GetUserAnalytics(store airtable.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := analytics.LoadUsers(c.Request.Context(), store, cfg.UsersTable)
		if err != nil {
			log.Printf("[ANALYTICS] Failed to load users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "users": analytics.SummarizeUsers(users)})
	}
}

// GetPostAnalytics aggregates the whole Posts table.
func GetPostAnalytics(store airtable.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := analytics.LoadPosts(c.Request.Context(), store, cfg.PostsTable)
		if err != nil {
			log.Printf("[ANALYTICS] Failed to load posts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "posts": analytics.SummarizePosts(posts)})
	}
}
