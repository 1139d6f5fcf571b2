package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type agencyService struct {
	BaseService
	agencyRepo portsrepo.AgencyRepository
}

// NewAgencyService creates the agency service.
func NewAgencyService(repo portsrepo.AgencyRepository) portssvc.AgencySvc {
	return &agencyService{agencyRepo: repo}
}

var _ portssvc.AgencySvc = (*agencyService)(nil)

func (s *agencyService) CreateAgency(ctx context.Context, founderID, name, baseCurrency string, startingCash decimal.Decimal) (*domain.Agency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: agency name is required", apperrors.ErrValidation)
	}
	baseCurrency = strings.ToUpper(strings.TrimSpace(baseCurrency))
	if len(baseCurrency) != 3 {
		return nil, fmt.Errorf("%w: base currency must be a 3-letter code", apperrors.ErrValidation)
	}
	if startingCash.IsNegative() {
		return nil, fmt.Errorf("%w: starting cash cannot be negative", apperrors.ErrValidation)
	}

	agency := domain.Agency{
		AgencyID:       uuid.NewString(),
		OwnerFounderID: founderID,
		Name:           name,
		BaseCurrency:   baseCurrency,
		StartingCash:   startingCash,
		CreatedAt:      time.Now(),
	}

	if err := s.agencyRepo.SaveAgency(ctx, agency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save agency", slog.String("founder_id", founderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Agency created",
		slog.String("agency_id", agency.AgencyID),
		slog.String("base_currency", agency.BaseCurrency))
	return &agency, nil
}

func (s *agencyService) GetAgencyByOwner(ctx context.Context, founderID string) (*domain.Agency, error) {
	agency, err := s.agencyRepo.FindAgencyByOwner(ctx, founderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find agency", slog.String("founder_id", founderID))
		}
		return nil, err
	}
	return agency, nil
}
