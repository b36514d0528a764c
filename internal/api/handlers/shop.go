package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/hridaya423/shiba-sub001/internal/shop"
)

// GetShopItems returns the full shop catalogue as a bare JSON array.
func GetShopItems(store airtable.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := shop.ListItems(c.Request.Context(), store, cfg.ShopTable)
		if err != nil {
			respondUpstreamError(c, "SHOP", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
