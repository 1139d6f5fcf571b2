package repositories

import (
	"context"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Context is threaded through every operation for request-scoped
// cancellation. All reads are scoped by agencyID; the store is the sole
// mutator and the engine only reads and derives.

// FounderRepository persists the authenticated principals.
type FounderRepository interface {
	// EnsureFounder provisions the founder on first sight; it is a no-op
	// when the founder already exists.
	EnsureFounder(ctx context.Context, founderID, email string) error
}

// AgencyRepository persists the tenant record.
type AgencyRepository interface {
	// SaveAgency inserts the agency; a second agency for the same founder
	// fails with apperrors.ErrDuplicate.
	SaveAgency(ctx context.Context, agency domain.Agency) error
	FindAgencyByOwner(ctx context.Context, founderID string) (*domain.Agency, error)
}

// CashSnapshotRepository persists the one-per-day cash checks.
type CashSnapshotRepository interface {
	// SaveSnapshot is an atomic check-and-insert: a second snapshot for
	// the same agency and day fails with apperrors.ErrDuplicate.
	SaveSnapshot(ctx context.Context, snapshot domain.CashSnapshot) error
	FindByDate(ctx context.Context, agencyID, date string) (*domain.CashSnapshot, error)
	// FindLatestBalance returns the most recent snapshot balance, or nil
	// when the agency has never recorded one.
	FindLatestBalance(ctx context.Context, agencyID string) (*decimal.Decimal, error)
	// FindLatestBalanceBefore returns the most recent balance strictly
	// before the given date, or nil.
	FindLatestBalanceBefore(ctx context.Context, agencyID, date string) (*decimal.Decimal, error)
}

// FinanceRepository persists revenue and cost entries and answers the
// windowed sums the analyzers run on.
type FinanceRepository interface {
	SaveRevenue(ctx context.Context, entry domain.RevenueEntry) error
	SaveCost(ctx context.Context, entry domain.CostEntry) error
	SumRevenueOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error)
	SumCostsOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error)
	SumFixedCostsSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error)
	// CostTotalsByCategorySince groups period costs by category, ordered
	// by each category's first occurrence in the period.
	CostTotalsByCategorySince(ctx context.Context, agencyID, since string) ([]analytics.CategoryTotal, error)
}

// ClientRepository persists the append-only client registry.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	ListClients(ctx context.Context, agencyID string) ([]domain.Client, error)
	FindClientByID(ctx context.Context, agencyID, clientID string) (*domain.Client, error)
}

// RetainerRepository persists retainers and answers the active set.
type RetainerRepository interface {
	// SaveSuperseding inserts the retainer and deactivates any prior
	// active retainer for the same client in one transaction.
	SaveSuperseding(ctx context.Context, retainer domain.Retainer) error
	ListActive(ctx context.Context, agencyID string) ([]analytics.ClientRetainer, error)
}

// TimeEntryRepository persists logged hours.
type TimeEntryRepository interface {
	SaveTimeEntry(ctx context.Context, entry domain.TimeEntry) error
	SumHoursSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error)
}

// RepositoryProvider bundles the repository set for service wiring.
type RepositoryProvider struct {
	FounderRepo  FounderRepository
	AgencyRepo   AgencyRepository
	SnapshotRepo CashSnapshotRepository
	FinanceRepo  FinanceRepository
	ClientRepo   ClientRepository
	RetainerRepo RetainerRepository
	TimeRepo     TimeEntryRepository
}
