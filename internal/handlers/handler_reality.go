package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/dto"
	"github.com/agencypulse/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// realityHandler handles the composite health score request.
type realityHandler struct {
	realityService portssvc.RealitySvc
	agencyService  portssvc.AgencySvc
}

func newRealityHandler(rs portssvc.RealitySvc, as portssvc.AgencySvc) *realityHandler {
	return &realityHandler{realityService: rs, agencyService: as}
}

// registerRealityRoutes registers the reality score route.
func registerRealityRoutes(rg *gin.RouterGroup, realityService portssvc.RealitySvc, agencyService portssvc.AgencySvc) {
	h := newRealityHandler(realityService, agencyService)

	rg.GET("/agency-reality-score", h.realityScore)
}

// realityScore godoc
// @Summary Agency reality score
// @Description Composite 0-100 health score with status tier, primary risk and per-dimension breakdown
// @Tags reality
// @Produce json
// @Success 200 {object} dto.RealityScoreResponse
// @Router /agency-reality-score [get]
func (h *realityHandler) realityScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	view, err := h.realityService.RealityScore(c.Request.Context(), *agency)
	if err != nil {
		logger.Error("Failed to compute reality score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute reality score"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRealityScoreResponse(view))
}
