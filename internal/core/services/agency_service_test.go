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

type AgencyServiceTestSuite struct {
	suite.Suite
	mockAgencyRepo *MockAgencyRepository
	service        portssvc.AgencySvc
}

func (suite *AgencyServiceTestSuite) SetupTest() {
	suite.mockAgencyRepo = new(MockAgencyRepository)
	suite.service = services.NewAgencyService(suite.mockAgencyRepo)
}

func (suite *AgencyServiceTestSuite) TestCreateAgency_Success() {
	ctx := context.Background()
	founderID := uuid.NewString()
	startingCash := decimal.NewFromInt(10000)

	suite.mockAgencyRepo.On("SaveAgency", ctx, mock.MatchedBy(func(a domain.Agency) bool {
		return a.OwnerFounderID == founderID &&
			a.Name == "Studio North" &&
			a.BaseCurrency == "EUR" &&
			a.StartingCash.Equal(startingCash) &&
			a.AgencyID != ""
	})).Return(nil).Once()

	agency, err := suite.service.CreateAgency(ctx, founderID, "  Studio North  ", "eur", startingCash)

	suite.Require().NoError(err)
	suite.Require().NotNil(agency)
	suite.Equal("Studio North", agency.Name)
	suite.Equal("EUR", agency.BaseCurrency)
	suite.mockAgencyRepo.AssertExpectations(suite.T())
}

func (suite *AgencyServiceTestSuite) TestCreateAgency_SecondAgencyConflict() {
	ctx := context.Background()
	founderID := uuid.NewString()

	suite.mockAgencyRepo.On("SaveAgency", ctx, mock.AnythingOfType("domain.Agency")).
		Return(apperrors.ErrDuplicate).Once()

	agency, err := suite.service.CreateAgency(ctx, founderID, "Second Shop", "USD", decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(agency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAgencyRepo.AssertExpectations(suite.T())
}

func (suite *AgencyServiceTestSuite) TestCreateAgency_Validation() {
	ctx := context.Background()
	founderID := uuid.NewString()

	cases := []struct {
		name         string
		agencyName   string
		currency     string
		startingCash decimal.Decimal
	}{
		{"empty name", "   ", "USD", decimal.Zero},
		{"bad currency", "Studio", "DOLLARS", decimal.Zero},
		{"negative starting cash", "Studio", "USD", decimal.NewFromInt(-1)},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			agency, err := suite.service.CreateAgency(ctx, founderID, tc.agencyName, tc.currency, tc.startingCash)
			suite.Require().Error(err)
			suite.Nil(agency)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}

	suite.mockAgencyRepo.AssertNotCalled(suite.T(), "SaveAgency")
}

func (suite *AgencyServiceTestSuite) TestGetAgencyByOwner_Success() {
	ctx := context.Background()
	founderID := uuid.NewString()
	expected := &domain.Agency{AgencyID: uuid.NewString(), OwnerFounderID: founderID, Name: "Studio North"}

	suite.mockAgencyRepo.On("FindAgencyByOwner", ctx, founderID).Return(expected, nil).Once()

	agency, err := suite.service.GetAgencyByOwner(ctx, founderID)

	suite.Require().NoError(err)
	suite.Equal(expected, agency)
	suite.mockAgencyRepo.AssertExpectations(suite.T())
}

func (suite *AgencyServiceTestSuite) TestGetAgencyByOwner_NotFound() {
	ctx := context.Background()
	founderID := uuid.NewString()

	suite.mockAgencyRepo.On("FindAgencyByOwner", ctx, founderID).Return(nil, apperrors.ErrNotFound).Once()

	agency, err := suite.service.GetAgencyByOwner(ctx, founderID)

	suite.Require().Error(err)
	suite.Nil(agency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAgencyRepo.AssertExpectations(suite.T())
}

func TestAgencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgencyServiceTestSuite))
}
