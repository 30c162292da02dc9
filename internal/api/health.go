package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/database"
)

// HealthHandler reports whether every backing schema is reachable
type HealthHandler struct {
	pools *database.Pools
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pools *database.Pools) *HealthHandler {
	return &HealthHandler{pools: pools}
}

// Health pings all five pools
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.pools != nil {
		if err := h.pools.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"status":  "degraded",
				"message": err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}
