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

// financeHandler handles HTTP requests for the revenue/cost ledger and
// the derived finance metrics.
type financeHandler struct {
	financeService portssvc.FinanceSvc
	agencyService  portssvc.AgencySvc
}

func newFinanceHandler(fs portssvc.FinanceSvc, as portssvc.AgencySvc) *financeHandler {
	return &financeHandler{financeService: fs, agencyService: as}
}

// registerFinanceRoutes registers the ledger and finance metric routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvc, agencyService portssvc.AgencySvc) {
	h := newFinanceHandler(financeService, agencyService)

	rg.POST("/revenue", h.addRevenue)
	rg.POST("/cost", h.addCost)
	rg.GET("/daily-summary/today", h.dailySummary)
	rg.GET("/burn-runway", h.burnRunway)
	rg.GET("/cost-breakdown", h.costBreakdown)
}

// addRevenue godoc
// @Summary Record a revenue entry
// @Tags finance
// @Accept json
// @Produce json
// @Param revenue body dto.AddRevenueRequest true "Revenue details"
// @Success 201 {object} dto.RevenueResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /revenue [post]
func (h *financeHandler) addRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddRevenue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	entry, err := h.financeService.AddRevenue(c.Request.Context(), agency.AgencyID, req.Amount, req.Source)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record revenue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record revenue"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueResponse(entry))
}

// addCost godoc
// @Summary Record a cost entry
// @Tags finance
// @Accept json
// @Produce json
// @Param cost body dto.AddCostRequest true "Cost details"
// @Success 201 {object} dto.CostResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /cost [post]
func (h *financeHandler) addCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	entry, err := h.financeService.AddCost(c.Request.Context(), agency.AgencyID, req.Amount, req.CostType, req.Category, req.Label)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record cost", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cost"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCostResponse(entry))
}

// dailySummary godoc
// @Summary Today's profit and loss
// @Tags finance
// @Produce json
// @Success 200 {object} dto.DailySummaryResponse
// @Router /daily-summary/today [get]
func (h *financeHandler) dailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	view, err := h.financeService.DailySummary(c.Request.Context(), agency.AgencyID)
	if err != nil {
		logger.Error("Failed to compute daily summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(view))
}

// burnRunway godoc
// @Summary Burn and runway metrics
// @Description Monthly burn, cash on hand, runway (null when burn is zero) and operating margin
// @Tags finance
// @Produce json
// @Success 200 {object} dto.BurnRunwayResponse
// @Router /burn-runway [get]
func (h *financeHandler) burnRunway(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	result, err := h.financeService.BurnRunway(c.Request.Context(), *agency)
	if err != nil {
		logger.Error("Failed to compute burn/runway", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute burn/runway"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBurnRunwayResponse(result))
}

// costBreakdown godoc
// @Summary Cost breakdown by category
// @Description Period cost totals per category and the primary cost driver
// @Tags finance
// @Produce json
// @Success 200 {object} dto.CostBreakdownResponse
// @Router /cost-breakdown [get]
func (h *financeHandler) costBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	result, err := h.financeService.CostBreakdown(c.Request.Context(), agency.AgencyID)
	if err != nil {
		logger.Error("Failed to compute cost breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cost breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostBreakdownResponse(result))
}
