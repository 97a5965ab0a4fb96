package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/core/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RevenueServiceTestSuite struct {
	suite.Suite
	mockRevenueRepo *MockRevenueRepository
	mockSettingsSvc *MockSettingsSvc
	service         portssvc.RevenueSvcFacade
}

func (suite *RevenueServiceTestSuite) SetupTest() {
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.mockSettingsSvc = new(MockSettingsSvc)
	suite.service = services.NewRevenueService(suite.mockRevenueRepo, suite.mockSettingsSvc)
}

func (suite *RevenueServiceTestSuite) TestCreateRevenue_DeliverySplitsFee() {
	ctx := context.Background()
	req := dto.CreateRevenueRequest{
		Date:    "2024-03-10",
		Amount:  decimal.RequireFromString("1000"),
		Channel: domain.ChannelDelivery,
	}

	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.MatchedBy(func(r domain.Revenue) bool {
		return r.FeeAmount.Equal(decimal.RequireFromString("200")) &&
			r.NetAmount.Equal(decimal.RequireFromString("800")) &&
			r.FeePercentApplied.Equal(decimal.NewFromInt(20))
	})).Return(nil).Once()

	revenue, err := suite.service.CreateRevenue(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(revenue.FeeAmount.Equal(decimal.RequireFromString("200")))
	suite.True(revenue.NetAmount.Equal(decimal.RequireFromString("800")))
	suite.mockRevenueRepo.AssertExpectations(suite.T())
}

func (suite *RevenueServiceTestSuite) TestCreateRevenue_LocalHasNoFee() {
	ctx := context.Background()
	req := dto.CreateRevenueRequest{
		Date:    "2024-03-10",
		Amount:  decimal.RequireFromString("750"),
		Channel: domain.ChannelLocal,
	}

	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.MatchedBy(func(r domain.Revenue) bool {
		return r.FeeAmount.IsZero() && r.NetAmount.Equal(decimal.RequireFromString("750"))
	})).Return(nil).Once()

	revenue, err := suite.service.CreateRevenue(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.True(revenue.FeePercentApplied.IsZero())
	suite.mockSettingsSvc.AssertNotCalled(suite.T(), "GetSettings")
}

func (suite *RevenueServiceTestSuite) TestCreateRevenue_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateRevenueRequest{
		Date:    "2024-03-10",
		Amount:  decimal.RequireFromString("-1"),
		Channel: domain.ChannelLocal,
	}

	_, err := suite.service.CreateRevenue(ctx, testAccountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRevenueRepo.AssertNotCalled(suite.T(), "SaveRevenue")
}

func (suite *RevenueServiceTestSuite) TestUpdateRevenue_ChannelChangeRecomputesSplit() {
	ctx := context.Background()
	existing := &domain.Revenue{
		RevenueID: "r1",
		AccountID: testAccountID,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("1000"),
		Channel:   domain.ChannelLocal,
		NetAmount: decimal.RequireFromString("1000"),
	}
	newChannel := domain.ChannelDelivery
	req := dto.UpdateRevenueRequest{Channel: &newChannel}

	suite.mockRevenueRepo.On("FindRevenueByID", ctx, testAccountID, "r1").Return(existing, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockRevenueRepo.On("UpdateRevenue", ctx, mock.MatchedBy(func(r domain.Revenue) bool {
		return r.Channel == domain.ChannelDelivery &&
			r.FeeAmount.Equal(decimal.RequireFromString("200")) &&
			r.NetAmount.Equal(decimal.RequireFromString("800"))
	})).Return(nil).Once()

	revenue, err := suite.service.UpdateRevenue(ctx, testAccountID, "r1", req)

	suite.Require().NoError(err)
	suite.True(revenue.NetAmount.Equal(decimal.RequireFromString("800")))
	suite.mockRevenueRepo.AssertExpectations(suite.T())
}

func (suite *RevenueServiceTestSuite) TestUpdateRevenue_NotFound() {
	ctx := context.Background()
	req := dto.UpdateRevenueRequest{}

	suite.mockRevenueRepo.On("FindRevenueByID", ctx, testAccountID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateRevenue(ctx, testAccountID, "missing", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRevenueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueServiceTestSuite))
}
