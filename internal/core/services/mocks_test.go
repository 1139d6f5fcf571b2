package services_test

import (
	"context"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AgencyRepository ---

type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) SaveAgency(ctx context.Context, agency domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockAgencyRepository) FindAgencyByOwner(ctx context.Context, founderID string) (*domain.Agency, error) {
	args := m.Called(ctx, founderID)
	var agency *domain.Agency
	if args.Get(0) != nil {
		agency = args.Get(0).(*domain.Agency)
	}
	return agency, args.Error(1)
}

// --- Mock CashSnapshotRepository ---

type MockCashSnapshotRepository struct {
	mock.Mock
}

func (m *MockCashSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.CashSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockCashSnapshotRepository) FindByDate(ctx context.Context, agencyID, date string) (*domain.CashSnapshot, error) {
	args := m.Called(ctx, agencyID, date)
	var snapshot *domain.CashSnapshot
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.CashSnapshot)
	}
	return snapshot, args.Error(1)
}

func (m *MockCashSnapshotRepository) FindLatestBalance(ctx context.Context, agencyID string) (*decimal.Decimal, error) {
	args := m.Called(ctx, agencyID)
	var balance *decimal.Decimal
	if args.Get(0) != nil {
		balance = args.Get(0).(*decimal.Decimal)
	}
	return balance, args.Error(1)
}

func (m *MockCashSnapshotRepository) FindLatestBalanceBefore(ctx context.Context, agencyID, date string) (*decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, date)
	var balance *decimal.Decimal
	if args.Get(0) != nil {
		balance = args.Get(0).(*decimal.Decimal)
	}
	return balance, args.Error(1)
}

// --- Mock FinanceRepository ---

type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) SaveRevenue(ctx context.Context, entry domain.RevenueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFinanceRepository) SaveCost(ctx context.Context, entry domain.CostEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFinanceRepository) SumRevenueOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SumCostsOn(ctx context.Context, agencyID, date string) (decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SumFixedCostsSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) CostTotalsByCategorySince(ctx context.Context, agencyID, since string) ([]analytics.CategoryTotal, error) {
	args := m.Called(ctx, agencyID, since)
	var totals []analytics.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]analytics.CategoryTotal)
	}
	return totals, args.Error(1)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) ListClients(ctx context.Context, agencyID string) ([]domain.Client, error) {
	args := m.Called(ctx, agencyID)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, agencyID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, agencyID, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

// --- Mock RetainerRepository ---

type MockRetainerRepository struct {
	mock.Mock
}

func (m *MockRetainerRepository) SaveSuperseding(ctx context.Context, retainer domain.Retainer) error {
	args := m.Called(ctx, retainer)
	return args.Error(0)
}

func (m *MockRetainerRepository) ListActive(ctx context.Context, agencyID string) ([]analytics.ClientRetainer, error) {
	args := m.Called(ctx, agencyID)
	var retainers []analytics.ClientRetainer
	if args.Get(0) != nil {
		retainers = args.Get(0).([]analytics.ClientRetainer)
	}
	return retainers, args.Error(1)
}

// --- Mock TimeEntryRepository ---

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) SaveTimeEntry(ctx context.Context, entry domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) SumHoursSince(ctx context.Context, agencyID, since string) (decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
