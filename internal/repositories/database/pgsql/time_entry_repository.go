package pgsql

import (
	"context"
	"fmt"

	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type pgxTimeEntryRepository struct {
	BaseRepository
}

func newPgxTimeEntryRepository(pool *pgxpool.Pool) portsrepo.TimeEntryRepository {
	return &pgxTimeEntryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TimeEntryRepository = (*pgxTimeEntryRepository)(nil)

func (r *pgxTimeEntryRepository) SaveTimeEntry(ctx context.Context, entry domain.TimeEntry) error {
	query := `
		INSERT INTO time_entries (entry_id, agency_id, client_id, hours, recorded_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.AgencyID, entry.ClientID, entry.Hours, entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save time entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// SumHoursSince counts internal and client work alike: both load the
// same capacity.
func (r *pgxTimeEntryRepository) SumHoursSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM time_entries
		WHERE agency_id = $1 AND recorded_at::date >= $2;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, agencyID, since).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum hours for agency %s: %w", agencyID, err)
	}
	return sum, nil
}
