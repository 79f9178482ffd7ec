package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpark-status-backend/internal/geo"
	"carpark-status-backend/internal/store"
)

// statusResponse reports the last data load plus the map center to
// fall back on when no observer location is known.
type statusResponse struct {
	store.LoadStatus
	MapCenter geo.Point `json:"map_center"`
}

// GetStatus handles GET /api/status.
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		LoadStatus: h.store.Status(),
		MapCenter:  geo.Point{Lat: h.cfg.Map.CenterLat, Lon: h.cfg.Map.CenterLon},
	})
}
