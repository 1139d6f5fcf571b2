package services_test

import (
	"context"
	"testing"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UtilizationServiceTestSuite struct {
	suite.Suite
	mockTimeRepo   *MockTimeEntryRepository
	mockClientRepo *MockClientRepository
	service        portssvc.UtilizationSvc
}

func (suite *UtilizationServiceTestSuite) SetupTest() {
	suite.mockTimeRepo = new(MockTimeEntryRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewUtilizationService(suite.mockTimeRepo, suite.mockClientRepo, decimal.NewFromInt(160), 30)
}

func (suite *UtilizationServiceTestSuite) TestLogTime_ClientWork() {
	ctx := context.Background()
	agencyID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, agencyID, clientID).
		Return(&domain.Client{ClientID: clientID, AgencyID: agencyID}, nil).Once()
	suite.mockTimeRepo.On("SaveTimeEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.AgencyID == agencyID && e.ClientID != nil && *e.ClientID == clientID && e.Hours.Equal(decimal.NewFromInt(6))
	})).Return(nil).Once()

	entry, err := suite.service.LogTime(ctx, agencyID, &clientID, decimal.NewFromInt(6))

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockTimeRepo.AssertExpectations(suite.T())
}

func (suite *UtilizationServiceTestSuite) TestLogTime_InternalWorkSkipsClientLookup() {
	ctx := context.Background()
	agencyID := uuid.NewString()

	suite.mockTimeRepo.On("SaveTimeEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.AgencyID == agencyID && e.ClientID == nil
	})).Return(nil).Once()

	entry, err := suite.service.LogTime(ctx, agencyID, nil, decimal.NewFromInt(3))

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID")
	suite.mockTimeRepo.AssertExpectations(suite.T())
}

func (suite *UtilizationServiceTestSuite) TestLogTime_UnknownClient() {
	ctx := context.Background()
	agencyID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, agencyID, clientID).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.LogTime(ctx, agencyID, &clientID, decimal.NewFromInt(2))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "SaveTimeEntry")
}

func (suite *UtilizationServiceTestSuite) TestLogTime_NonPositiveHours() {
	ctx := context.Background()

	entry, err := suite.service.LogTime(ctx, uuid.NewString(), nil, decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimeRepo.AssertNotCalled(suite.T(), "SaveTimeEntry")
}

func (suite *UtilizationServiceTestSuite) TestUtilization_RoundsToNearestPercent() {
	ctx := context.Background()
	agencyID := uuid.NewString()

	suite.mockTimeRepo.On("SumHoursSince", ctx, agencyID, mock.AnythingOfType("string")).
		Return(decimal.NewFromInt(150), nil).Once()

	result, err := suite.service.Utilization(ctx, agencyID)

	suite.Require().NoError(err)
	suite.Equal(94, result.UtilizationPercent)
	suite.True(result.CapacityHours.Equal(decimal.NewFromInt(160)))
	suite.mockTimeRepo.AssertExpectations(suite.T())
}

func (suite *UtilizationServiceTestSuite) TestUtilization_OvercommitmentNotCapped() {
	ctx := context.Background()
	agencyID := uuid.NewString()

	suite.mockTimeRepo.On("SumHoursSince", ctx, agencyID, mock.AnythingOfType("string")).
		Return(decimal.NewFromInt(200), nil).Once()

	result, err := suite.service.Utilization(ctx, agencyID)

	suite.Require().NoError(err)
	suite.Equal(125, result.UtilizationPercent)
}

func TestUtilizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UtilizationServiceTestSuite))
}
