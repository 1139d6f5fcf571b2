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

// agencyHandler handles HTTP requests related to the agency record.
type agencyHandler struct {
	agencyService portssvc.AgencySvc
}

func newAgencyHandler(as portssvc.AgencySvc) *agencyHandler {
	return &agencyHandler{agencyService: as}
}

// registerAgencyRoutes registers routes related to the agency record.
func registerAgencyRoutes(rg *gin.RouterGroup, agencyService portssvc.AgencySvc) {
	h := newAgencyHandler(agencyService)

	agency := rg.Group("/agency")
	{
		agency.POST("", h.createAgency)
		agency.GET("", h.getAgency)
	}
}

// createAgency godoc
// @Summary Create the founder's agency
// @Description Creates the single agency owned by the authenticated founder
// @Tags agency
// @Accept json
// @Produce json
// @Param agency body dto.CreateAgencyRequest true "Agency details"
// @Success 201 {object} dto.AgencyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Agency already exists"
// @Router /agency [post]
func (h *agencyHandler) createAgency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAgency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	founderID, ok := middleware.GetFounderIDFromContext(c)
	if !ok {
		logger.Error("Founder ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agency, err := h.agencyService.CreateAgency(c.Request.Context(), founderID, req.Name, req.BaseCurrency, req.StartingCash)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Agency already exists"})
		default:
			logger.Error("Failed to create agency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agency"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAgencyResponse(agency))
}

// getAgency godoc
// @Summary Get the founder's agency
// @Description Retrieves the agency owned by the authenticated founder
// @Tags agency
// @Produce json
// @Success 200 {object} dto.AgencyResponse
// @Failure 404 {object} map[string]string "Agency not set up yet"
// @Router /agency [get]
func (h *agencyHandler) getAgency(c *gin.Context) {
	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}
