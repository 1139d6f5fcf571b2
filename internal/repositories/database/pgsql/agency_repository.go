package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/agencypulse/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxAgencyRepository struct {
	BaseRepository
}

func newPgxAgencyRepository(pool *pgxpool.Pool) portsrepo.AgencyRepository {
	return &pgxAgencyRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AgencyRepository = (*pgxAgencyRepository)(nil)

func toDomainAgency(m models.Agency) domain.Agency {
	return domain.Agency{
		AgencyID:       m.AgencyID,
		OwnerFounderID: m.OwnerFounderID,
		Name:           m.Name,
		BaseCurrency:   m.BaseCurrency,
		StartingCash:   m.StartingCash,
		CreatedAt:      m.CreatedAt,
	}
}

// SaveAgency inserts the agency. The unique index on owner_founder_id
// turns a second create into ErrDuplicate.
func (r *pgxAgencyRepository) SaveAgency(ctx context.Context, agency domain.Agency) error {
	query := `
		INSERT INTO agencies (agency_id, owner_founder_id, name, base_currency, starting_cash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		agency.AgencyID,
		agency.OwnerFounderID,
		agency.Name,
		agency.BaseCurrency,
		agency.StartingCash,
		agency.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: founder %s already has an agency", apperrors.ErrDuplicate, agency.OwnerFounderID)
		}
		return fmt.Errorf("failed to save agency %s: %w", agency.AgencyID, err)
	}
	return nil
}

func (r *pgxAgencyRepository) FindAgencyByOwner(ctx context.Context, founderID string) (*domain.Agency, error) {
	query := `
		SELECT agency_id, owner_founder_id, name, base_currency, starting_cash, created_at
		FROM agencies
		WHERE owner_founder_id = $1;
	`
	var m models.Agency
	err := r.Pool.QueryRow(ctx, query, founderID).Scan(
		&m.AgencyID,
		&m.OwnerFounderID,
		&m.Name,
		&m.BaseCurrency,
		&m.StartingCash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agency for founder %s: %w", founderID, err)
	}

	agency := toDomainAgency(m)
	return &agency, nil
}
