package services_test

import (
	"context"
	"testing"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// The aggregator is tested through the real analyzer services so the
// score it reports always agrees with the individual endpoints.
type RealityServiceTestSuite struct {
	suite.Suite
	mockSnapshotRepo *MockCashSnapshotRepository
	mockFinanceRepo  *MockFinanceRepository
	mockRetainerRepo *MockRetainerRepository
	mockClientRepo   *MockClientRepository
	mockTimeRepo     *MockTimeEntryRepository
	service          portssvc.RealitySvc
}

func (suite *RealityServiceTestSuite) SetupTest() {
	suite.mockSnapshotRepo = new(MockCashSnapshotRepository)
	suite.mockFinanceRepo = new(MockFinanceRepository)
	suite.mockRetainerRepo = new(MockRetainerRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockTimeRepo = new(MockTimeEntryRepository)

	finance := services.NewFinanceService(suite.mockSnapshotRepo, suite.mockFinanceRepo, suite.mockRetainerRepo)
	client := services.NewClientService(suite.mockClientRepo, suite.mockRetainerRepo, suite.mockFinanceRepo)
	utilization := services.NewUtilizationService(suite.mockTimeRepo, suite.mockClientRepo, decimal.NewFromInt(160), 30)
	suite.service = services.NewRealityService(finance, client, utilization)
}

func (suite *RealityServiceTestSuite) stubLedger(burn, cash decimal.Decimal, retainers []analytics.ClientRetainer, hours decimal.Decimal) {
	suite.mockFinanceRepo.On("SumFixedCostsSince", mock.Anything, mock.Anything, mock.Anything).Return(burn, nil)
	suite.mockSnapshotRepo.On("FindLatestBalance", mock.Anything, mock.Anything).Return(&cash, nil)
	suite.mockRetainerRepo.On("ListActive", mock.Anything, mock.Anything).Return(retainers, nil)
	suite.mockTimeRepo.On("SumHoursSince", mock.Anything, mock.Anything, mock.Anything).Return(hours, nil)
}

func (suite *RealityServiceTestSuite) TestRealityScore_SingleClientShop() {
	ctx := context.Background()
	agency := domain.Agency{AgencyID: uuid.NewString(), StartingCash: decimal.Zero}

	// Burn 2000, cash 10000 (runway 5.0), one client covering burn 1.5x,
	// 72h of 160h capacity (45%).
	suite.stubLedger(
		decimal.NewFromInt(2000),
		decimal.NewFromInt(10000),
		[]analytics.ClientRetainer{{ClientID: "only", MonthlyAmount: decimal.NewFromInt(3000)}},
		decimal.NewFromInt(72),
	)

	view, err := suite.service.RealityScore(ctx, agency)

	suite.Require().NoError(err)
	suite.Equal(25, view.Score.Breakdown.RetainerSafety.Points)
	suite.Equal(13, view.Score.Breakdown.Runway.Points)
	suite.Equal(0, view.Score.Breakdown.ClientConcentration.Points)
	suite.Equal(20, view.Score.Breakdown.Profitability.Points)
	suite.Equal(11, view.Score.Breakdown.CapacityPressure.Points)
	suite.Equal(69, view.Score.Score)
	suite.Equal(analytics.StatusWatch, view.Score.Status)
	suite.Equal(analytics.RiskClientConcentration, view.Score.PrimaryRisk)
	suite.True(view.CashOnHand.Equal(decimal.NewFromInt(10000)))
	suite.True(view.CommittedRetainers.Equal(decimal.NewFromInt(3000)))
}

func (suite *RealityServiceTestSuite) TestRealityScore_HealthyAgency() {
	ctx := context.Background()
	agency := domain.Agency{AgencyID: uuid.NewString()}

	// Burn 2000, cash 20000 (runway 10), three balanced clients covering
	// 1.5x, utilization inside the 60-85 band.
	suite.stubLedger(
		decimal.NewFromInt(2000),
		decimal.NewFromInt(20000),
		[]analytics.ClientRetainer{
			{ClientID: "a", MonthlyAmount: decimal.NewFromInt(1000)},
			{ClientID: "b", MonthlyAmount: decimal.NewFromInt(1000)},
			{ClientID: "c", MonthlyAmount: decimal.NewFromInt(1000)},
		},
		decimal.NewFromInt(120),
	)

	view, err := suite.service.RealityScore(ctx, agency)

	suite.Require().NoError(err)
	suite.Equal(100, view.Score.Score)
	suite.Equal(analytics.StatusHealthy, view.Score.Status)
	suite.Equal(analytics.StatusHealthy, view.Score.PrimaryRisk)
}

func (suite *RealityServiceTestSuite) TestRealityScore_BrandNewAgency() {
	ctx := context.Background()
	agency := domain.Agency{AgencyID: uuid.NewString(), StartingCash: decimal.NewFromInt(5000)}

	// No costs, no retainers, no hours: zero burn earns full safety and
	// runway marks, idle capacity and no clients cost the rest.
	suite.mockFinanceRepo.On("SumFixedCostsSince", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	suite.mockSnapshotRepo.On("FindLatestBalance", mock.Anything, mock.Anything).Return(nil, nil)
	suite.mockRetainerRepo.On("ListActive", mock.Anything, mock.Anything).Return(nil, nil)
	suite.mockTimeRepo.On("SumHoursSince", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	view, err := suite.service.RealityScore(ctx, agency)

	suite.Require().NoError(err)
	suite.Equal(25, view.Score.Breakdown.RetainerSafety.Points)
	suite.Equal(20, view.Score.Breakdown.Runway.Points)
	suite.Equal(0, view.Score.Breakdown.CapacityPressure.Points)
	suite.Equal(85, view.Score.Score)
	suite.Equal(analytics.StatusHealthy, view.Score.Status)
	suite.True(view.CashOnHand.Equal(decimal.NewFromInt(5000)))
	suite.True(view.CommittedRetainers.IsZero())
}

func (suite *RealityServiceTestSuite) TestRealityScore_AnalyzerErrorPropagates() {
	ctx := context.Background()
	agency := domain.Agency{AgencyID: uuid.NewString()}
	boom := context.DeadlineExceeded

	suite.mockFinanceRepo.On("SumFixedCostsSince", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, boom)

	view, err := suite.service.RealityScore(ctx, agency)

	suite.Require().Error(err)
	suite.Nil(view)
	suite.ErrorIs(err, boom)
}

func TestRealityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RealityServiceTestSuite))
}
