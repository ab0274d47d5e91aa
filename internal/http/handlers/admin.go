package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regdesk/regdesk/internal/observability"
)

type AdminHandler struct {
	metrics *observability.DispatchMetrics
}

func NewAdminHandler(metrics *observability.DispatchMetrics) *AdminHandler {
	return &AdminHandler{metrics: metrics}
}

// DispatchStats exposes the in-process dispatch counters for quick checks
// without a prometheus scrape.
func (h *AdminHandler) DispatchStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.metrics.Snapshot())
}
