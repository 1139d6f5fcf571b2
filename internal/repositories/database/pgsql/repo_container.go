package pgsql

import (
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the full pgsql repository set.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FounderRepo:  newPgxFounderRepository(dbPool),
		AgencyRepo:   newPgxAgencyRepository(dbPool),
		SnapshotRepo: newPgxCashSnapshotRepository(dbPool),
		FinanceRepo:  newPgxFinanceRepository(dbPool),
		ClientRepo:   newPgxClientRepository(dbPool),
		RetainerRepo: newPgxRetainerRepository(dbPool),
		TimeRepo:     newPgxTimeEntryRepository(dbPool),
	}
}
