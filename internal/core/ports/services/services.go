package services

import (
	"context"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/agencypulse/backend/internal/core/views"
	"github.com/shopspring/decimal"
)

// AgencySvc manages the tenant record.
type AgencySvc interface {
	// CreateAgency creates the founder's single agency; a second create
	// fails with apperrors.ErrDuplicate.
	CreateAgency(ctx context.Context, founderID, name, baseCurrency string, startingCash decimal.Decimal) (*domain.Agency, error)
	// GetAgencyByOwner fails with apperrors.ErrNotFound when the founder
	// has not created an agency yet.
	GetAgencyByOwner(ctx context.Context, founderID string) (*domain.Agency, error)
}

// FinanceSvc covers the cash, revenue and cost side of the ledger plus
// the derived burn/runway, daily-summary and cost-breakdown metrics.
type FinanceSvc interface {
	RecordSnapshot(ctx context.Context, agencyID string, cashBalance decimal.Decimal) (*domain.CashSnapshot, error)
	TodaySnapshot(ctx context.Context, agencyID string) (*views.DailyCashView, error)
	AddRevenue(ctx context.Context, agencyID string, amount decimal.Decimal, source string) (*domain.RevenueEntry, error)
	AddCost(ctx context.Context, agencyID string, amount decimal.Decimal, costType domain.CostType, category domain.CostCategory, label string) (*domain.CostEntry, error)
	DailySummary(ctx context.Context, agencyID string) (*views.DailySummaryView, error)
	BurnRunway(ctx context.Context, agency domain.Agency) (*analytics.BurnRunway, error)
	CostBreakdown(ctx context.Context, agencyID string) (*analytics.CostBreakdown, error)
}

// ClientSvc covers the client registry, retainers and retainer coverage.
type ClientSvc interface {
	CreateClient(ctx context.Context, agencyID, name string) (*domain.Client, error)
	ListClients(ctx context.Context, agencyID string) ([]domain.Client, error)
	CreateRetainer(ctx context.Context, agencyID, clientID string, monthlyAmount decimal.Decimal) (*domain.Retainer, error)
	RetainerSummary(ctx context.Context, agencyID string) (*analytics.RetainerCoverage, error)
}

// UtilizationSvc covers logged hours and capacity utilization.
type UtilizationSvc interface {
	LogTime(ctx context.Context, agencyID string, clientID *string, hours decimal.Decimal) (*domain.TimeEntry, error)
	Utilization(ctx context.Context, agencyID string) (*analytics.Utilization, error)
}

// RealitySvc aggregates the analyzer outputs into the composite score.
type RealitySvc interface {
	RealityScore(ctx context.Context, agency domain.Agency) (*views.RealityScoreView, error)
}

// ServiceContainer bundles the service set for handler wiring.
type ServiceContainer struct {
	Agency      AgencySvc
	Finance     FinanceSvc
	Client      ClientSvc
	Utilization UtilizationSvc
	Reality     RealitySvc
}
