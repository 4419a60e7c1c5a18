package handlers

import (
	"net/http"

	"github.com/hello383/Sway/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
}

// GetStats serves the public dashboard and map payload. The numbers come
// straight off the store on every call.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.ComputeStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
