package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/accounts"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/config"
)

// GetMyProfile returns the profile of the user holding token.
func GetMyProfile(store airtable.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Token) == "" {
			respondMessage(c, http.StatusBadRequest, "Token is required")
			return
		}

		user, err := accounts.FindByToken(c.Request.Context(), store, cfg.UsersTable, req.Token)
		if err != nil {
			if errors.Is(err, accounts.ErrInvalidToken) {
				respondMessage(c, http.StatusUnauthorized, "Invalid token")
				return
			}
			respondUpstreamError(c, "PROFILE", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "profile": user})
	}
}
