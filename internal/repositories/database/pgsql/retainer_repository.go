package pgsql

import (
	"context"
	"fmt"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type pgxRetainerRepository struct {
	BaseRepository
}

func newPgxRetainerRepository(pool *pgxpool.Pool) portsrepo.RetainerRepository {
	return &pgxRetainerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RetainerRepository = (*pgxRetainerRepository)(nil)

// SaveSuperseding deactivates any prior active retainer for the client
// and inserts the new one in a single transaction, so the one-active-
// retainer-per-client expectation holds even under concurrent creates.
func (r *pgxRetainerRepository) SaveSuperseding(ctx context.Context, retainer domain.Retainer) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin retainer transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	deactivate := `
		UPDATE retainers
		SET is_active = FALSE
		WHERE agency_id = $1 AND client_id = $2 AND is_active;
	`
	if _, err := tx.Exec(ctx, deactivate, retainer.AgencyID, retainer.ClientID); err != nil {
		return fmt.Errorf("failed to deactivate prior retainer for client %s: %w", retainer.ClientID, err)
	}

	insert := `
		INSERT INTO retainers (retainer_id, agency_id, client_id, monthly_amount, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, insert,
		retainer.RetainerID,
		retainer.AgencyID,
		retainer.ClientID,
		retainer.MonthlyAmount,
		retainer.IsActive,
		retainer.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save retainer %s: %w", retainer.RetainerID, err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRetainerRepository) ListActive(ctx context.Context, agencyID string) ([]analytics.ClientRetainer, error) {
	query := `
		SELECT client_id, monthly_amount
		FROM retainers
		WHERE agency_id = $1 AND is_active
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active retainers for agency %s: %w", agencyID, err)
	}
	defer rows.Close()

	var retainers []analytics.ClientRetainer
	for rows.Next() {
		var clientID string
		var amount decimal.Decimal
		if err := rows.Scan(&clientID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan retainer row: %w", err)
		}
		retainers = append(retainers, analytics.ClientRetainer{ClientID: clientID, MonthlyAmount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate retainer rows: %w", err)
	}
	return retainers, nil
}
