package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divinasnails/salon-manager/internal/httperr"
	"github.com/divinasnails/salon-manager/internal/httpresp"
	"github.com/divinasnails/salon-manager/internal/stats"
)

type StatsHandler struct {
	stats *stats.Service
}

func NewStatsHandler(s *stats.Service) *StatsHandler {
	return &StatsHandler{stats: s}
}

func (h *StatsHandler) Get(c *gin.Context) {
	out, err := h.stats.Get(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Error al calcular estadísticas.")
		return
	}

	httpresp.OK(c, out)
}
