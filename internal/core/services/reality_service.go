package services

import (
	"context"
	"log/slog"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/core/views"
)

type realityService struct {
	BaseService
	finance     portssvc.FinanceSvc
	client      portssvc.ClientSvc
	utilization portssvc.UtilizationSvc
}

// NewRealityService creates the score aggregator. It composes the other
// analyzers rather than re-reading the ledger, so the score always
// agrees with the individual endpoints.
func NewRealityService(
	finance portssvc.FinanceSvc,
	client portssvc.ClientSvc,
	utilization portssvc.UtilizationSvc,
) portssvc.RealitySvc {
	return &realityService{
		finance:     finance,
		client:      client,
		utilization: utilization,
	}
}

var _ portssvc.RealitySvc = (*realityService)(nil)

func (s *realityService) RealityScore(ctx context.Context, agency domain.Agency) (*views.RealityScoreView, error) {
	burn, err := s.finance.BurnRunway(ctx, agency)
	if err != nil {
		return nil, err
	}
	coverage, err := s.client.RetainerSummary(ctx, agency.AgencyID)
	if err != nil {
		return nil, err
	}
	util, err := s.utilization.Utilization(ctx, agency.AgencyID)
	if err != nil {
		return nil, err
	}

	score := analytics.ComputeRealityScore(analytics.ScoreInput{
		CoverageRatio:       coverage.CoverageRatio,
		RunwayMonths:        burn.RunwayMonths,
		TopClientPercentage: coverage.TopClientPercentage,
		OperatingMargin:     burn.OperatingMargin,
		MonthlyBurn:         burn.MonthlyBurn,
		UtilizationPercent:  util.UtilizationPercent,
	})

	s.LogDebug(ctx, "Reality score computed",
		slog.String("agency_id", agency.AgencyID),
		slog.Int("score", score.Score),
		slog.String("status", score.Status))

	return &views.RealityScoreView{
		Score:              score,
		CashOnHand:         burn.CashOnHand,
		CommittedRetainers: burn.TotalRetainers,
	}, nil
}
