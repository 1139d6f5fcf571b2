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

// clientHandler handles HTTP requests for the client registry and
// retainers.
type clientHandler struct {
	clientService portssvc.ClientSvc
	agencyService portssvc.AgencySvc
}

func newClientHandler(cs portssvc.ClientSvc, as portssvc.AgencySvc) *clientHandler {
	return &clientHandler{clientService: cs, agencyService: as}
}

// registerClientRoutes registers client and retainer routes.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvc, agencyService portssvc.AgencySvc) {
	h := newClientHandler(clientService, agencyService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
	}
	rg.POST("/retainers", h.createRetainer)
	rg.GET("/retainer-summary", h.retainerSummary)
}

// createClient godoc
// @Summary Register a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), agency.AgencyID, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create client", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List the client registry
// @Tags clients
// @Produce json
// @Success 200 {object} dto.ListClientsResponse
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), agency.AgencyID)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// createRetainer godoc
// @Summary Create a retainer for a client
// @Description Creates a retainer, superseding any prior active retainer for the client
// @Tags clients
// @Accept json
// @Produce json
// @Param retainer body dto.CreateRetainerRequest true "Retainer details"
// @Success 201 {object} dto.RetainerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Unknown client"
// @Router /retainers [post]
func (h *clientHandler) createRetainer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRetainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRetainer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	retainer, err := h.clientService.CreateRetainer(c.Request.Context(), agency.AgencyID, req.ClientID, req.MonthlyAmount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown client"})
		default:
			logger.Error("Failed to create retainer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create retainer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRetainerResponse(retainer))
}

// retainerSummary godoc
// @Summary Retainer coverage summary
// @Description Total committed retainers, burn coverage ratio (null when burn is zero) and top-client concentration
// @Tags clients
// @Produce json
// @Success 200 {object} dto.RetainerSummaryResponse
// @Router /retainer-summary [get]
func (h *clientHandler) retainerSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, ok := resolveAgency(c, h.agencyService)
	if !ok {
		return
	}

	result, err := h.clientService.RetainerSummary(c.Request.Context(), agency.AgencyID)
	if err != nil {
		logger.Error("Failed to compute retainer summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute retainer summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRetainerSummaryResponse(result))
}
