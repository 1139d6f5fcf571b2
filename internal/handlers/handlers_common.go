package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resolveAgency loads the authenticated founder's agency. Every ledger
// and analytics route goes through this, so agency scoping can never be
// forgotten on an individual handler. Writes the error response and
// returns false when the founder is missing or has no agency yet.
func resolveAgency(c *gin.Context, agencySvc portssvc.AgencySvc) (*domain.Agency, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	founderID, ok := middleware.GetFounderIDFromContext(c)
	if !ok {
		logger.Error("Founder ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	agency, err := agencySvc.GetAgencyByOwner(c.Request.Context(), founderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not set up yet"})
		} else {
			logger.Error("Failed to resolve agency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve agency"})
		}
		return nil, false
	}
	return agency, true
}
