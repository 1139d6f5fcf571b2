package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxFounderRepository struct {
	BaseRepository
}

func newPgxFounderRepository(pool *pgxpool.Pool) portsrepo.FounderRepository {
	return &pgxFounderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FounderRepository = (*pgxFounderRepository)(nil)

// EnsureFounder provisions the founder on first sight. The upsert makes
// concurrent first requests from the same founder race-safe.
func (r *pgxFounderRepository) EnsureFounder(ctx context.Context, founderID, email string) error {
	query := `
		INSERT INTO founders (founder_id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (founder_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, founderID, email, time.Now())
	if err != nil {
		return fmt.Errorf("failed to ensure founder %s: %w", founderID, err)
	}
	return nil
}
