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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo   portsrepo.ClientRepository
	retainerRepo portsrepo.RetainerRepository
	financeRepo  portsrepo.FinanceRepository
}

// NewClientService creates the client service.
func NewClientService(
	clientRepo portsrepo.ClientRepository,
	retainerRepo portsrepo.RetainerRepository,
	financeRepo portsrepo.FinanceRepository,
) portssvc.ClientSvc {
	return &clientService{
		clientRepo:   clientRepo,
		retainerRepo: retainerRepo,
		financeRepo:  financeRepo,
	}
}

var _ portssvc.ClientSvc = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, agencyID, name string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	client := domain.Client{
		ClientID:  uuid.NewString(),
		AgencyID:  agencyID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("agency_id", agencyID),
		slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) ListClients(ctx context.Context, agencyID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, agencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("agency_id", agencyID))
		return nil, err
	}
	return clients, nil
}

// CreateRetainer verifies the client belongs to the agency, then inserts
// the retainer superseding any prior active one for that client.
func (s *clientService) CreateRetainer(ctx context.Context, agencyID, clientID string, monthlyAmount decimal.Decimal) (*domain.Retainer, error) {
	if !monthlyAmount.IsPositive() {
		return nil, fmt.Errorf("%w: monthly amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, agencyID, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}

	retainer := domain.Retainer{
		RetainerID:    uuid.NewString(),
		AgencyID:      agencyID,
		ClientID:      clientID,
		MonthlyAmount: monthlyAmount,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	if err := s.retainerRepo.SaveSuperseding(ctx, retainer); err != nil {
		s.LogError(ctx, err, "Failed to save retainer", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Retainer created",
		slog.String("agency_id", agencyID),
		slog.String("client_id", clientID),
		slog.String("monthly_amount", monthlyAmount.String()))
	return &retainer, nil
}

func (s *clientService) RetainerSummary(ctx context.Context, agencyID string) (*analytics.RetainerCoverage, error) {
	since := time.Now().AddDate(0, 0, -burnWindowDays).Format(dateLayout)

	monthlyBurn, err := s.financeRepo.SumFixedCostsSince(ctx, agencyID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum fixed costs", slog.String("agency_id", agencyID))
		return nil, err
	}

	retainers, err := s.retainerRepo.ListActive(ctx, agencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active retainers", slog.String("agency_id", agencyID))
		return nil, err
	}

	result := analytics.ComputeRetainerCoverage(retainers, monthlyBurn)
	return &result, nil
}
