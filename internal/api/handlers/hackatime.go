package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/hackatime"
)

// HackatimeProjects lists the Hackatime projects a game may claim time from.
func HackatimeProjects(svc *hackatime.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		slackID := strings.TrimSpace(c.Query("slackId"))
		if slackID == "" {
			respondMessage(c, http.StatusBadRequest, "slackId is required")
			return
		}
		gameID := strings.TrimSpace(c.Query("gameId"))

		projects, err := svc.Available(c.Request.Context(), slackID, gameID)
		if err != nil {
			var apiErr *hackatime.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
				respondMessage(c, http.StatusNotFound, "Hackatime user not found")
				return
			}
			respondUpstreamError(c, "HACKATIME", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
	}
}
