package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/accounts"
	"github.com/hridaya423/shiba-sub001/internal/audit"
	"github.com/hridaya423/shiba-sub001/internal/middleware"
	"github.com/hridaya423/shiba-sub001/internal/playtest"
)

type submitPlaytestRequest struct {
	Token           string   `json:"token"`
	PlaytestID      string   `json:"playtestId"`
	FunScore        *float64 `json:"funScore"`
	ArtScore        *float64 `json:"artScore"`
	CreativityScore *float64 `json:"creativityScore"`
	AudioScore      *float64 `json:"audioScore"`
	MoodScore       *float64 `json:"moodScore"`
	Feedback        *string  `json:"feedback"`
	PlaytimeSeconds *float64 `json:"playtimeSeconds"`
}

func (r submitPlaytestRequest) submission() playtest.Submission {
	return playtest.Submission{
		FunScore:        r.FunScore,
		ArtScore:        r.ArtScore,
		CreativityScore: r.CreativityScore,
		AudioScore:      r.AudioScore,
		MoodScore:       r.MoodScore,
		Feedback:        r.Feedback,
		PlaytimeSeconds: r.PlaytimeSeconds,
	}
}

// SubmitPlaytest records a player's scores for a playtest ticket and marks
// it Complete.
func SubmitPlaytest(svc *playtest.Service, auditLog *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitPlaytestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondMessage(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Token = strings.TrimSpace(req.Token)
		req.PlaytestID = strings.TrimSpace(req.PlaytestID)
		if req.Token == "" || req.PlaytestID == "" {
			respondMessage(c, http.StatusBadRequest, "Token and playtestId are required")
			return
		}

		ctx := c.Request.Context()
		res, err := svc.Submit(ctx, req.Token, req.PlaytestID, req.submission())

		entry := audit.Entry{
			RequestID: middleware.GetRequestID(c),
			Action:    audit.ActionSubmitPlaytest,
			Route:     c.FullPath(),
			IP:        c.ClientIP(),
			Target:    req.PlaytestID,
			Success:   err == nil,
		}
		if res != nil {
			entry.UserRecordID = res.UserID
		}
		if err != nil {
			entry.Details = audit.Details(map[string]string{"error": err.Error()})
		} else {
			entry.Details = audit.Details(map[string]interface{}{"updated": res.Updated})
		}
		auditLog.Record(context.WithoutCancel(ctx), entry)

		var invalid *playtest.InvalidFieldError
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"ok": true, "playtest": res.Ticket, "updated": res.Updated})
		case errors.As(err, &invalid):
			respondMessage(c, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, accounts.ErrInvalidToken):
			respondMessage(c, http.StatusUnauthorized, "Invalid token")
		case errors.Is(err, playtest.ErrTicketNotFound):
			respondMessage(c, http.StatusNotFound, "Playtest not found")
		case errors.Is(err, playtest.ErrNotOwner):
			respondMessage(c, http.StatusForbidden, "This playtest is not assigned to you")
		case errors.Is(err, playtest.ErrThrottled):
			respondMessage(c, http.StatusTooManyRequests, "Too many submissions, try again shortly")
		case errors.Is(err, playtest.ErrNothingToUpdate):
			respondMessage(c, http.StatusBadRequest, "All fields have already been submitted")
		default:
			respondUpstreamError(c, "PLAYTEST", err)
		}
	}
}
