package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type utilizationService struct {
	BaseService
	timeRepo   portsrepo.TimeEntryRepository
	clientRepo portsrepo.ClientRepository

	capacityHours decimal.Decimal
	windowDays    int
}

// NewUtilizationService creates the utilization service. capacityHours
// is the billable capacity per window, windowDays the trailing window
// length.
func NewUtilizationService(
	timeRepo portsrepo.TimeEntryRepository,
	clientRepo portsrepo.ClientRepository,
	capacityHours decimal.Decimal,
	windowDays int,
) portssvc.UtilizationSvc {
	return &utilizationService{
		timeRepo:      timeRepo,
		clientRepo:    clientRepo,
		capacityHours: capacityHours,
		windowDays:    windowDays,
	}
}

var _ portssvc.UtilizationSvc = (*utilizationService)(nil)

// LogTime records worked hours. A nil clientID is internal work; a
// non-nil one must name a client of this agency.
func (s *utilizationService) LogTime(ctx context.Context, agencyID string, clientID *string, hours decimal.Decimal) (*domain.TimeEntry, error) {
	if !hours.IsPositive() {
		return nil, fmt.Errorf("%w: hours must be positive", apperrors.ErrValidation)
	}

	if clientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, agencyID, *clientID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to find client", slog.String("client_id", *clientID))
			}
			return nil, err
		}
	}

	entry := domain.TimeEntry{
		EntryID:    uuid.NewString(),
		AgencyID:   agencyID,
		ClientID:   clientID,
		Hours:      hours,
		RecordedAt: time.Now(),
	}

	if err := s.timeRepo.SaveTimeEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save time entry", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Time logged",
		slog.String("agency_id", agencyID),
		slog.String("hours", hours.String()))
	return &entry, nil
}

func (s *utilizationService) Utilization(ctx context.Context, agencyID string) (*analytics.Utilization, error) {
	since := time.Now().AddDate(0, 0, -s.windowDays).Format(dateLayout)

	used, err := s.timeRepo.SumHoursSince(ctx, agencyID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum logged hours", slog.String("agency_id", agencyID))
		return nil, err
	}

	result := analytics.ComputeUtilization(used, s.capacityHours)
	return &result, nil
}
