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

type pgxFinanceRepository struct {
	BaseRepository
}

func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepository {
	return &pgxFinanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FinanceRepository = (*pgxFinanceRepository)(nil)

func (r *pgxFinanceRepository) SaveRevenue(ctx context.Context, entry domain.RevenueEntry) error {
	query := `
		INSERT INTO revenue_entries (revenue_id, agency_id, amount, source, recorded_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, entry.RevenueID, entry.AgencyID, entry.Amount, entry.Source, entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save revenue entry %s: %w", entry.RevenueID, err)
	}
	return nil
}

func (r *pgxFinanceRepository) SaveCost(ctx context.Context, entry domain.CostEntry) error {
	query := `
		INSERT INTO cost_entries (cost_id, agency_id, amount, cost_type, category, label, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.CostID,
		entry.AgencyID,
		entry.Amount,
		string(entry.Type),
		string(entry.Category),
		entry.Label,
		entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cost entry %s: %w", entry.CostID, err)
	}
	return nil
}

func (r *pgxFinanceRepository) SumRevenueOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM revenue_entries
		WHERE agency_id = $1 AND recorded_at::date = $2;
	`
	return r.scanSum(ctx, query, agencyID, date)
}

func (r *pgxFinanceRepository) SumCostsOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cost_entries
		WHERE agency_id = $1 AND recorded_at::date = $2;
	`
	return r.scanSum(ctx, query, agencyID, date)
}

func (r *pgxFinanceRepository) SumFixedCostsSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cost_entries
		WHERE agency_id = $1 AND cost_type = 'fixed' AND recorded_at::date >= $2;
	`
	return r.scanSum(ctx, query, agencyID, since)
}

// CostTotalsByCategorySince groups the period's costs by category.
// Ordering by each category's first occurrence keeps driver tie-breaks
// deterministic across retries.
func (r *pgxFinanceRepository) CostTotalsByCategorySince(ctx context.Context, agencyID, since string) ([]analytics.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM cost_entries
		WHERE agency_id = $1 AND recorded_at::date >= $2
		GROUP BY category
		ORDER BY MIN(recorded_at);
	`
	rows, err := r.Pool.Query(ctx, query, agencyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost totals by category: %w", err)
	}
	defer rows.Close()

	var totals []analytics.CategoryTotal
	for rows.Next() {
		var category string
		var amount decimal.Decimal
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan cost category total: %w", err)
		}
		totals = append(totals, analytics.CategoryTotal{
			Category: domain.CostCategory(category),
			Amount:   amount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cost category totals: %w", err)
	}
	return totals, nil
}

func (r *pgxFinanceRepository) scanSum(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query ledger sum: %w", err)
	}
	return sum, nil
}
