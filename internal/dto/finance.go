package dto

import (
	"time"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/agencypulse/backend/internal/core/views"
	"github.com/shopspring/decimal"
)

// RecordSnapshotRequest defines the data for today's cash check.
type RecordSnapshotRequest struct {
	CashBalance decimal.Decimal `json:"cash_balance" binding:"gte=0"` // zero is a legal balance
}

// SnapshotResponse defines the data returned for a recorded snapshot.
type SnapshotResponse struct {
	SnapshotID  string          `json:"snapshot_id"`
	Date        string          `json:"date"`
	CashBalance decimal.Decimal `json:"cash_balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToSnapshotResponse converts a domain.CashSnapshot to SnapshotResponse DTO
func ToSnapshotResponse(s *domain.CashSnapshot) SnapshotResponse {
	return SnapshotResponse{
		SnapshotID:  s.SnapshotID,
		Date:        s.Date,
		CashBalance: s.CashBalance,
		CreatedAt:   s.CreatedAt,
	}
}

// DailyCashResponse is today's snapshot with the previous balance and
// delta when a prior snapshot exists; both are null for the first ever.
type DailyCashResponse struct {
	Date                string           `json:"date"`
	CashBalance         decimal.Decimal  `json:"cash_balance"`
	PreviousCashBalance *decimal.Decimal `json:"previous_cash_balance"`
	Delta               *decimal.Decimal `json:"delta"`
}

// ToDailyCashResponse converts a views.DailyCashView to DailyCashResponse DTO
func ToDailyCashResponse(v *views.DailyCashView) DailyCashResponse {
	return DailyCashResponse{
		Date:                v.Date,
		CashBalance:         v.CashBalance,
		PreviousCashBalance: v.PreviousCashBalance,
		Delta:               v.Delta,
	}
}

// AddRevenueRequest defines the data for a revenue entry.
type AddRevenueRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Source string          `json:"source"`
}

// RevenueResponse defines the data returned for a revenue entry.
type RevenueResponse struct {
	RevenueID  string          `json:"revenue_id"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// ToRevenueResponse converts a domain.RevenueEntry to RevenueResponse DTO
func ToRevenueResponse(e *domain.RevenueEntry) RevenueResponse {
	return RevenueResponse{
		RevenueID:  e.RevenueID,
		Amount:     e.Amount,
		Source:     e.Source,
		RecordedAt: e.RecordedAt,
	}
}

// AddCostRequest defines the data for a cost entry.
type AddCostRequest struct {
	Amount   decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	CostType domain.CostType     `json:"cost_type" binding:"required,oneof=fixed variable"`
	Category domain.CostCategory `json:"category" binding:"required,oneof=people tools other"`
	Label    string              `json:"label"`
}

// CostResponse defines the data returned for a cost entry.
type CostResponse struct {
	CostID     string              `json:"cost_id"`
	Amount     decimal.Decimal     `json:"amount"`
	CostType   domain.CostType     `json:"cost_type"`
	Category   domain.CostCategory `json:"category"`
	Label      string              `json:"label"`
	RecordedAt time.Time           `json:"recorded_at"`
}

// ToCostResponse converts a domain.CostEntry to CostResponse DTO
func ToCostResponse(e *domain.CostEntry) CostResponse {
	return CostResponse{
		CostID:     e.CostID,
		Amount:     e.Amount,
		CostType:   e.Type,
		Category:   e.Category,
		Label:      e.Label,
		RecordedAt: e.RecordedAt,
	}
}

// DailySummaryResponse is today's profit and loss.
type DailySummaryResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	Net     decimal.Decimal `json:"net"`
}

// ToDailySummaryResponse converts a views.DailySummaryView to DailySummaryResponse DTO
func ToDailySummaryResponse(v *views.DailySummaryView) DailySummaryResponse {
	return DailySummaryResponse{
		Date:    v.Date,
		Revenue: v.Summary.Revenue,
		Costs:   v.Summary.Costs,
		Net:     v.Summary.Net,
	}
}

// BurnRunwayResponse is the survival view. runway_months is null when
// the burn is zero: the runway is infinite, not unknown.
type BurnRunwayResponse struct {
	MonthlyBurn     decimal.Decimal  `json:"monthly_burn"`
	CashOnHand      decimal.Decimal  `json:"cash_on_hand"`
	RunwayMonths    *decimal.Decimal `json:"runway_months"`
	OperatingMargin decimal.Decimal  `json:"operating_margin"`
	TotalRetainers  decimal.Decimal  `json:"total_retainers"`
}

// ToBurnRunwayResponse converts an analytics.BurnRunway to BurnRunwayResponse DTO
func ToBurnRunwayResponse(b *analytics.BurnRunway) BurnRunwayResponse {
	return BurnRunwayResponse{
		MonthlyBurn:     b.MonthlyBurn,
		CashOnHand:      b.CashOnHand,
		RunwayMonths:    b.RunwayMonths,
		OperatingMargin: b.OperatingMargin,
		TotalRetainers:  b.TotalRetainers,
	}
}

// CostDriverResponse names the dominant cost category.
type CostDriverResponse struct {
	Category   domain.CostCategory `json:"category"`
	Amount     decimal.Decimal     `json:"amount"`
	Percentage decimal.Decimal     `json:"percentage"`
}

// CostBreakdownResponse is the period cost breakdown by category.
type CostBreakdownResponse struct {
	TotalCosts    decimal.Decimal                         `json:"total_costs"`
	ByCategory    map[domain.CostCategory]decimal.Decimal `json:"by_category"`
	PrimaryDriver CostDriverResponse                      `json:"primary_driver"`
}

// ToCostBreakdownResponse converts an analytics.CostBreakdown to CostBreakdownResponse DTO
func ToCostBreakdownResponse(b *analytics.CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		TotalCosts: b.TotalCosts,
		ByCategory: b.ByCategory,
		PrimaryDriver: CostDriverResponse{
			Category:   b.PrimaryDriver.Category,
			Amount:     b.PrimaryDriver.Amount,
			Percentage: b.PrimaryDriver.Percentage,
		},
	}
}
