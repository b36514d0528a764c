package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/accounts"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/hridaya423/shiba-sub001/internal/orders"
)

// GetMyOrders lists the caller's orders with shop item details attached.
func GetMyOrders(store airtable.Store, cfg *config.Config) gin.HandlerFunc {
	resolver := orders.NewResolver(store, cfg.OrdersTable, models.FieldOrderSpentBy, cfg.AirtableMaxScanRecords)

	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Token) == "" {
			respondMessage(c, http.StatusBadRequest, "Token is required")
			return
		}

		ctx := c.Request.Context()
		user, err := accounts.FindByToken(ctx, store, cfg.UsersTable, req.Token)
		if err != nil {
			if errors.Is(err, accounts.ErrInvalidToken) {
				respondMessage(c, http.StatusUnauthorized, "Invalid token")
				return
			}
			respondUpstreamError(c, "ORDERS", err)
			return
		}

		list, err := orders.ForUser(ctx, resolver, user.ID)
		if err != nil {
			respondUpstreamError(c, "ORDERS", err)
			return
		}
		orders.Enrich(ctx, store, cfg.ShopTable, list)

		c.JSON(http.StatusOK, gin.H{"ok": true, "orders": list})
	}
}
