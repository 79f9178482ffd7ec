package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"carpark-status-backend/internal/model"
	"carpark-status-backend/internal/rank"
)

// CarparksGeoJSON handles GET /api/carparks.geojson?lat=&lon=&limit=.
//
// Without an observer it returns markers for every carpark. With one,
// it returns the nearest subset plus an observer feature, so the map
// widget can fit its view to exactly the points it should show.
func (h *Handler) CarparksGeoJSON(c *gin.Context) {
	carparks := h.store.Carparks()

	fc := geojson.NewFeatureCollection()

	latParam, lonParam := c.Query("lat"), c.Query("lon")
	if latParam != "" || lonParam != "" {
		observer, err := parseObserver(latParam, lonParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ranked := rank.Nearest(carparks, observer, h.cfg.Ranking.DefaultLimit)
		for i, cp := range ranked {
			f := carparkFeature(cp)
			f.Properties["rank"] = i + 1
			f.Properties["distance_km"] = cp.Distance
			fc.Append(f)
		}

		user := geojson.NewFeature(orb.Point{observer.Lon, observer.Lat})
		user.Properties["role"] = "observer"
		fc.Append(user)
	} else {
		for _, cp := range carparks {
			fc.Append(carparkFeature(cp))
		}
	}

	c.JSON(http.StatusOK, fc)
}

func carparkFeature(cp model.Carpark) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{cp.Lon, cp.Lat})
	f.ID = cp.ID
	f.Properties["id"] = cp.ID
	f.Properties["address"] = cp.Address
	f.Properties["type"] = cp.Type
	f.Properties["available"] = cp.Available
	f.Properties["band"] = cp.AvailabilityBand()
	return f
}
