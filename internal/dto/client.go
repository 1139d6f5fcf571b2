package dto

import (
	"time"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// ListClientsResponse wraps the client registry.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse DTO
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res}
}

// CreateRetainerRequest defines the data for a retainer commitment.
type CreateRetainerRequest struct {
	ClientID      string          `json:"client_id" binding:"required,uuid"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount" binding:"required,gt=0"`
}

// RetainerResponse defines the data returned for a retainer.
type RetainerResponse struct {
	RetainerID    string          `json:"retainer_id"`
	ClientID      string          `json:"client_id"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToRetainerResponse converts a domain.Retainer to RetainerResponse DTO
func ToRetainerResponse(r *domain.Retainer) RetainerResponse {
	return RetainerResponse{
		RetainerID:    r.RetainerID,
		ClientID:      r.ClientID,
		MonthlyAmount: r.MonthlyAmount,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}
}

// RetainerSummaryResponse is the coverage view of the active retainer
// base. coverage_ratio is null when the burn is zero: coverage is
// uncapped, not unknown.
type RetainerSummaryResponse struct {
	TotalMonthlyRetainer decimal.Decimal  `json:"total_monthly_retainer"`
	CoverageRatio        *decimal.Decimal `json:"coverage_ratio"`
	TopClientID          string           `json:"top_client_id,omitempty"`
	TopClientPercentage  decimal.Decimal  `json:"top_client_percentage"`
}

// ToRetainerSummaryResponse converts an analytics.RetainerCoverage to RetainerSummaryResponse DTO
func ToRetainerSummaryResponse(c *analytics.RetainerCoverage) RetainerSummaryResponse {
	return RetainerSummaryResponse{
		TotalMonthlyRetainer: c.TotalMonthlyRetainer,
		CoverageRatio:        c.CoverageRatio,
		TopClientID:          c.TopClientID,
		TopClientPercentage:  c.TopClientPercentage,
	}
}
