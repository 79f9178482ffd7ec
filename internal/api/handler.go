package api

import (
	"carpark-status-backend/config"
	"carpark-status-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	cfg   *config.Config
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, cfg *config.Config) *Handler {
	return &Handler{
		store: s,
		cfg:   cfg,
	}
}
