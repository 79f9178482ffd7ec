package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carpark-status-backend/internal/model"
	"carpark-status-backend/internal/view"
)

// carparksResponse is the paginated table payload.
type carparksResponse struct {
	Items      []model.Carpark `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
	Query      string          `json:"query,omitempty"`
}

// ListCarparks handles GET /api/carparks?q=&page=.
func (h *Handler) ListCarparks(c *gin.Context) {
	m := view.NewManager(h.store.Carparks(), h.cfg.View.PageSize)

	if q := c.Query("q"); q != "" {
		m.SetSearchTerm(q)
	}

	if pageParam := c.Query("page"); pageParam != "" {
		n, err := strconv.Atoi(pageParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
			return
		}
		// Out-of-range pages are rejected, not clamped.
		if !m.SetPage(n) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Page out of range"})
			return
		}
	}

	c.JSON(http.StatusOK, carparksResponse{
		Items:      m.VisiblePage(),
		Page:       m.Page(),
		PageSize:   h.cfg.View.PageSize,
		TotalPages: m.TotalPages(),
		TotalItems: m.TotalItems(),
		Query:      m.SearchTerm(),
	})
}

// GetCarpark handles GET /api/carparks/:id.
func (h *Handler) GetCarpark(c *gin.Context) {
	cp, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Carpark not found"})
		return
	}
	c.JSON(http.StatusOK, cp)
}
