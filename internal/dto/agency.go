package dto

import (
	"time"

	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAgencyRequest defines the data needed to create the founder's agency.
type CreateAgencyRequest struct {
	Name         string          `json:"name" binding:"required"`
	BaseCurrency string          `json:"base_currency" binding:"required,len=3"`
	StartingCash decimal.Decimal `json:"starting_cash" binding:"gte=0"` // zero is a legal starting position
}

// AgencyResponse defines the data returned for the agency.
type AgencyResponse struct {
	AgencyID     string          `json:"agency_id"`
	Name         string          `json:"name"`
	BaseCurrency string          `json:"base_currency"`
	StartingCash decimal.Decimal `json:"starting_cash"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToAgencyResponse converts a domain.Agency to AgencyResponse DTO
func ToAgencyResponse(a *domain.Agency) AgencyResponse {
	return AgencyResponse{
		AgencyID:     a.AgencyID,
		Name:         a.Name,
		BaseCurrency: a.BaseCurrency,
		StartingCash: a.StartingCash,
		CreatedAt:    a.CreatedAt,
	}
}
