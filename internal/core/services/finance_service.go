package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/core/views"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type financeService struct {
	BaseService
	snapshotRepo portsrepo.CashSnapshotRepository
	financeRepo  portsrepo.FinanceRepository
	retainerRepo portsrepo.RetainerRepository
}

// NewFinanceService creates the finance service.
func NewFinanceService(
	snapshotRepo portsrepo.CashSnapshotRepository,
	financeRepo portsrepo.FinanceRepository,
	retainerRepo portsrepo.RetainerRepository,
) portssvc.FinanceSvc {
	return &financeService{
		snapshotRepo: snapshotRepo,
		financeRepo:  financeRepo,
		retainerRepo: retainerRepo,
	}
}

var _ portssvc.FinanceSvc = (*financeService)(nil)

func (s *financeService) RecordSnapshot(ctx context.Context, agencyID string, cashBalance decimal.Decimal) (*domain.CashSnapshot, error) {
	if cashBalance.IsNegative() {
		return nil, fmt.Errorf("%w: cash balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	snapshot := domain.CashSnapshot{
		SnapshotID:  uuid.NewString(),
		AgencyID:    agencyID,
		Date:        now.Format(dateLayout),
		CashBalance: cashBalance,
		CreatedAt:   now,
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save cash snapshot", slog.String("agency_id", agencyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cash snapshot recorded",
		slog.String("agency_id", agencyID),
		slog.String("date", snapshot.Date))
	return &snapshot, nil
}

func (s *financeService) TodaySnapshot(ctx context.Context, agencyID string) (*views.DailyCashView, error) {
	today := time.Now().Format(dateLayout)

	snapshot, err := s.snapshotRepo.FindByDate(ctx, agencyID, today)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find today's snapshot", slog.String("agency_id", agencyID))
		}
		return nil, err
	}

	previous, err := s.snapshotRepo.FindLatestBalanceBefore(ctx, agencyID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to find previous snapshot balance", slog.String("agency_id", agencyID))
		return nil, err
	}

	view := views.DailyCashView{
		Date:                snapshot.Date,
		CashBalance:         snapshot.CashBalance,
		PreviousCashBalance: previous,
	}
	if previous != nil {
		delta := snapshot.CashBalance.Sub(*previous)
		view.Delta = &delta
	}
	return &view, nil
}

func (s *financeService) AddRevenue(ctx context.Context, agencyID string, amount decimal.Decimal, source string) (*domain.RevenueEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: revenue amount must be positive", apperrors.ErrValidation)
	}

	entry := domain.RevenueEntry{
		RevenueID:  uuid.NewString(),
		AgencyID:   agencyID,
		Amount:     amount,
		Source:     strings.TrimSpace(source),
		RecordedAt: time.Now(),
	}

	if err := s.financeRepo.SaveRevenue(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save revenue entry", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Revenue recorded",
		slog.String("agency_id", agencyID),
		slog.String("amount", amount.String()))
	return &entry, nil
}

func (s *financeService) AddCost(ctx context.Context, agencyID string, amount decimal.Decimal, costType domain.CostType, category domain.CostCategory, label string) (*domain.CostEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: cost amount must be positive", apperrors.ErrValidation)
	}
	switch costType {
	case domain.CostTypeFixed, domain.CostTypeVariable:
	default:
		return nil, fmt.Errorf("%w: cost type must be fixed or variable", apperrors.ErrValidation)
	}
	switch category {
	case domain.CategoryPeople, domain.CategoryTools, domain.CategoryOther:
	default:
		return nil, fmt.Errorf("%w: category must be people, tools or other", apperrors.ErrValidation)
	}

	entry := domain.CostEntry{
		CostID:     uuid.NewString(),
		AgencyID:   agencyID,
		Amount:     amount,
		Type:       costType,
		Category:   category,
		Label:      strings.TrimSpace(label),
		RecordedAt: time.Now(),
	}

	if err := s.financeRepo.SaveCost(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save cost entry", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Cost recorded",
		slog.String("agency_id", agencyID),
		slog.String("amount", amount.String()),
		slog.String("category", string(category)))
	return &entry, nil
}

func (s *financeService) DailySummary(ctx context.Context, agencyID string) (*views.DailySummaryView, error) {
	today := time.Now().Format(dateLayout)

	revenue, err := s.financeRepo.SumRevenueOn(ctx, agencyID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum today's revenue", slog.String("agency_id", agencyID))
		return nil, err
	}
	costs, err := s.financeRepo.SumCostsOn(ctx, agencyID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum today's costs", slog.String("agency_id", agencyID))
		return nil, err
	}

	return &views.DailySummaryView{
		Date:    today,
		Summary: analytics.ComputeDailySummary(revenue, costs),
	}, nil
}

// BurnRunway reads the trailing fixed-cost window, the freshest known
// cash position and the active retainer base, then hands off to the
// pure computation. With no snapshot on record the agency's starting
// cash stands in for cash on hand.
func (s *financeService) BurnRunway(ctx context.Context, agency domain.Agency) (*analytics.BurnRunway, error) {
	since := time.Now().AddDate(0, 0, -burnWindowDays).Format(dateLayout)

	fixedCosts, err := s.financeRepo.SumFixedCostsSince(ctx, agency.AgencyID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum fixed costs", slog.String("agency_id", agency.AgencyID))
		return nil, err
	}

	balance, err := s.snapshotRepo.FindLatestBalance(ctx, agency.AgencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find latest balance", slog.String("agency_id", agency.AgencyID))
		return nil, err
	}
	cashOnHand := agency.StartingCash
	if balance != nil {
		cashOnHand = *balance
	}

	retainers, err := s.retainerRepo.ListActive(ctx, agency.AgencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active retainers", slog.String("agency_id", agency.AgencyID))
		return nil, err
	}
	totalRetainers := decimal.Zero
	for _, r := range retainers {
		totalRetainers = totalRetainers.Add(r.MonthlyAmount)
	}

	result := analytics.ComputeBurnRunway(fixedCosts, cashOnHand, totalRetainers)
	return &result, nil
}

func (s *financeService) CostBreakdown(ctx context.Context, agencyID string) (*analytics.CostBreakdown, error) {
	since := time.Now().AddDate(0, 0, -burnWindowDays).Format(dateLayout)

	totals, err := s.financeRepo.CostTotalsByCategorySince(ctx, agencyID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to read cost totals", slog.String("agency_id", agencyID))
		return nil, err
	}

	result := analytics.ComputeCostBreakdown(totals)
	return &result, nil
}
