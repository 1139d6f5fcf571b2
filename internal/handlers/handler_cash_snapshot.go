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

// cashSnapshotHandler handles HTTP requests for daily cash snapshots.
type cashSnapshotHandler struct {
	financeService portssvc.FinanceSvc
	agencyService  portssvc.AgencySvc
}

func newCashSnapshotHandler(fs portssvc.FinanceSvc, as portssvc.AgencySvc) *cashSnapshotHandler {
	return &cashSnapshotHandler{financeService: fs, agencyService: as}
}

// registerCashSnapshotRoutes registers routes related to cash snapshots.
func registerCashSnapshotRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvc, agencyService portssvc.AgencySvc) {
	h := newCashSnapshotHandler(financeService, agencyService)

	snapshots := rg.Group("/cash-snapshot")
	{
		snapshots.POST("", h.recordSnapshot)
		snapshots.GET("/today", h.todaySnapshot)
	}
}

// recordSnapshot godoc
// @Summary Record today's cash balance
// @Description Records the agency's cash balance for today; one snapshot per day
// @Tags cash-snapshot
// @Accept json
// @Produce json
// @Param snapshot body dto.RecordSnapshotRequest true "Cash balance"
// @Success 201 {object} dto.SnapshotResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Snapshot already recorded today"
// @Router /cash-snapshot [post]
func (h *cashSnapshotHandler) recordSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSnapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	snapshot, err := h.financeService.RecordSnapshot(c.Request.Context(), agency.AgencyID, req.CashBalance)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Snapshot already recorded today"})
		default:
			logger.Error("Failed to record snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record snapshot"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSnapshotResponse(snapshot))
}

// todaySnapshot godoc
// @Summary Get today's snapshot
// @Description Retrieves today's snapshot with the previous balance and delta
// @Tags cash-snapshot
// @Produce json
// @Success 200 {object} dto.DailyCashResponse
// @Failure 404 {object} map[string]string "No snapshot recorded today"
// @Router /cash-snapshot/today [get]
func (h *cashSnapshotHandler) todaySnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	view, err := h.financeService.TodaySnapshot(c.Request.Context(), agency.AgencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot recorded today"})
		} else {
			logger.Error("Failed to fetch today's snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today's snapshot"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyCashResponse(view))
}
