package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type pgxCashSnapshotRepository struct {
	BaseRepository
}

func newPgxCashSnapshotRepository(pool *pgxpool.Pool) portsrepo.CashSnapshotRepository {
	return &pgxCashSnapshotRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CashSnapshotRepository = (*pgxCashSnapshotRepository)(nil)

// SaveSnapshot inserts the day's snapshot. The UNIQUE(agency_id,
// snapshot_date) constraint makes this an atomic check-and-insert: a
// second same-day insert fails with ErrDuplicate, the first row is never
// overwritten.
func (r *pgxCashSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.CashSnapshot) error {
	query := `
		INSERT INTO daily_cash_snapshots (snapshot_id, agency_id, snapshot_date, cash_balance, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		snapshot.SnapshotID,
		snapshot.AgencyID,
		snapshot.Date,
		snapshot.CashBalance,
		snapshot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: snapshot for %s already recorded", apperrors.ErrDuplicate, snapshot.Date)
		}
		return fmt.Errorf("failed to save snapshot %s: %w", snapshot.SnapshotID, err)
	}
	return nil
}

func (r *pgxCashSnapshotRepository) FindByDate(ctx context.Context, agencyID, date string) (*domain.CashSnapshot, error) {
	query := `
		SELECT snapshot_id, cash_balance, created_at
		FROM daily_cash_snapshots
		WHERE agency_id = $1 AND snapshot_date = $2;
	`
	snap := domain.CashSnapshot{AgencyID: agencyID, Date: date}
	err := r.Pool.QueryRow(ctx, query, agencyID, date).Scan(&snap.SnapshotID, &snap.CashBalance, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find snapshot for %s on %s: %w", agencyID, date, err)
	}
	return &snap, nil
}

func (r *pgxCashSnapshotRepository) FindLatestBalance(ctx context.Context, agencyID string) (*decimal.Decimal, error) {
	query := `
		SELECT cash_balance
		FROM daily_cash_snapshots
		WHERE agency_id = $1
		ORDER BY snapshot_date DESC
		LIMIT 1;
	`
	return r.scanBalance(ctx, query, agencyID)
}

func (r *pgxCashSnapshotRepository) FindLatestBalanceBefore(ctx context.Context, agencyID, date string) (*decimal.Decimal, error) {
	query := `
		SELECT cash_balance
		FROM daily_cash_snapshots
		WHERE agency_id = $1 AND snapshot_date < $2
		ORDER BY snapshot_date DESC
		LIMIT 1;
	`
	return r.scanBalance(ctx, query, agencyID, date)
}

func (r *pgxCashSnapshotRepository) scanBalance(ctx context.Context, query string, args ...any) (*decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no snapshot yet is not an error
		}
		return nil, fmt.Errorf("failed to query snapshot balance: %w", err)
	}
	return &balance, nil
}
