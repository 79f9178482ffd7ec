package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carpark-status-backend/internal/geo"
	"carpark-status-backend/internal/rank"
)

// NearestCarparks handles GET /api/carparks/nearest?lat=&lon=&limit=.
func (h *Handler) NearestCarparks(c *gin.Context) {
	observer, err := parseObserver(c.Query("lat"), c.Query("lon"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := h.cfg.Ranking.DefaultLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		n, err := strconv.Atoi(limitParam)
		if err != nil || n < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, rank.Nearest(h.store.Carparks(), observer, limit))
}

// parseObserver validates a lat/lon query pair.
func parseObserver(latParam, lonParam string) (geo.Point, error) {
	if latParam == "" || lonParam == "" {
		return geo.Point{}, fmt.Errorf("lat and lon query parameters are required")
	}
	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil || lat < -90 || lat > 90 {
		return geo.Point{}, fmt.Errorf("invalid latitude %q", latParam)
	}
	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil || lon < -180 || lon > 180 {
		return geo.Point{}, fmt.Errorf("invalid longitude %q", lonParam)
	}
	return geo.Point{Lat: lat, Lon: lon}, nil
}
