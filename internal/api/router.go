package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"carpark-status-backend/config"
	"carpark-status-backend/internal/mw"
	"carpark-status-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg)

	rateLimiter := mw.RateLimit(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Table view: filtered, paginated rows.
		api.GET("/carparks", caching, handler.ListCarparks)

		// Nearest-carpark ranking for an observer location.
		api.GET("/carparks/nearest", handler.NearestCarparks)

		// Map markers as GeoJSON.
		api.GET("/carparks.geojson", handler.CarparksGeoJSON)

		// Single carpark lookup ("show on map").
		api.GET("/carparks/:id", caching, handler.GetCarpark)

		api.GET("/status", handler.GetStatus)
		api.POST("/locate", handler.ReportLocation)
	}

	return r
}
