package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpark-status-backend/internal/locate"
)

// locateRequest is the browser's report of its one-shot geolocation
// outcome: either a position or an error kind, never both.
type locateRequest struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Error string   `json:"error"`
}

// locateResponse carries the status message the UI should display.
type locateResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ReportLocation handles POST /api/locate.
func (h *Handler) ReportLocation(c *gin.Context) {
	var req locateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Error != "" {
		msg, _ := locate.Message(locate.ErrorKind(req.Error))
		c.JSON(http.StatusOK, locateResponse{OK: false, Message: msg})
		return
	}

	if req.Lat == nil || req.Lon == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, locateResponse{
		OK:      true,
		Message: fmt.Sprintf("Location found: %.4f, %.4f. Calculating nearest car parks...", *req.Lat, *req.Lon),
	})
}
