package handlers

import (
	"net/http"

	"serenispa/services/stats"
	"serenispa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes the admin statistics endpoints.
type StatsHandler struct {
	Service stats.StatsService
	Logger  *zap.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc stats.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{Service: svc, Logger: logger}
}

// GetMasterStats handles GET /api/masters/stats?period= (admin).
func (h *StatsHandler) GetMasterStats(c *gin.Context) {
	period := c.DefaultQuery("period", utils.PeriodAll)

	result, err := h.Service.MasterStats(period)
	if err != nil {
		h.Logger.Error("Failed to calculate master statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch master statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": result, "period": period})
}
