package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agencypulse/backend/internal/apperrors"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/dto"
	"github.com/agencypulse/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// utilizationHandler handles HTTP requests for time logging and
// capacity utilization.
type utilizationHandler struct {
	utilizationService portssvc.UtilizationSvc
	agencyService      portssvc.AgencySvc
}

func newUtilizationHandler(us portssvc.UtilizationSvc, as portssvc.AgencySvc) *utilizationHandler {
	return &utilizationHandler{utilizationService: us, agencyService: as}
}

// registerUtilizationRoutes registers time entry and utilization routes.
func registerUtilizationRoutes(rg *gin.RouterGroup, utilizationService portssvc.UtilizationSvc, agencyService portssvc.AgencySvc) {
	h := newUtilizationHandler(utilizationService, agencyService)

	rg.POST("/time-entry", h.logTime)
	rg.GET("/utilization", h.utilization)
}

// logTime godoc
// @Summary Log worked hours
// @Description Logs hours against a client, or internal work when client_id is null
// @Tags utilization
// @Accept json
// @Produce json
// @Param entry body dto.LogTimeRequest true "Time entry"
// @Success 201 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Unknown client"
// @Router /time-entry [post]
func (h *utilizationHandler) logTime(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LogTime", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	entry, err := h.utilizationService.LogTime(c.Request.Context(), agency.AgencyID, req.ClientID, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown client"})
		default:
			logger.Error("Failed to log time", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log time"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeEntryResponse(entry))
}

// utilization godoc
// @Summary Capacity utilization
// @Description Logged hours against billable capacity over the billing window
// @Tags utilization
// @Produce json
// @Success 200 {object} dto.UtilizationResponse
// @Router /utilization [get]
func (h *utilizationHandler) utilization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	result, err := h.utilizationService.Utilization(c.Request.Context(), agency.AgencyID)
	if err != nil {
		logger.Error("Failed to compute utilization", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute utilization"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUtilizationResponse(result))
}
