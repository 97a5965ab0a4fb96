package services_test

import (
	"context"
	"testing"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/core/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettingsByAccountID(ctx context.Context, accountID string) (*domain.Settings, error) {
	args := m.Called(ctx, accountID)
	var settings *domain.Settings
	if args.Get(0) != nil {
		settings = args.Get(0).(*domain.Settings)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenNeverSaved() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindSettingsByAccountID", ctx, testAccountID).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx, testAccountID)

	suite.Require().NoError(err)
	suite.True(settings.StartingBalance.IsZero())
	suite.True(settings.DefaultVatPercent.Equal(decimal.NewFromInt(10)))
	suite.True(settings.DeliveryFeePercent.Equal(decimal.NewFromInt(20)))
	suite.Equal(domain.DefaultCurrency, settings.Currency)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_ReturnsSavedRow() {
	ctx := context.Background()
	saved := testSettings("5000")

	suite.mockSettingsRepo.On("FindSettingsByAccountID", ctx, testAccountID).Return(saved, nil).Once()

	settings, err := suite.service.GetSettings(ctx, testAccountID)

	suite.Require().NoError(err)
	suite.True(settings.StartingBalance.Equal(decimal.RequireFromString("5000")))
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NegativePercentRejected() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		DefaultVatPercent:  decimal.NewFromInt(-1),
		DeliveryFeePercent: decimal.NewFromInt(20),
	}

	_, err := suite.service.UpdateSettings(ctx, testAccountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings")
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_KeepsCurrencyWhenOmitted() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		StartingBalance:    decimal.RequireFromString("2500"),
		DefaultVatPercent:  decimal.NewFromInt(20),
		DeliveryFeePercent: decimal.NewFromInt(25),
	}

	suite.mockSettingsRepo.On("FindSettingsByAccountID", ctx, testAccountID).Return(testSettings("0"), nil).Once()
	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.Currency == "RSD" && s.StartingBalance.Equal(decimal.RequireFromString("2500"))
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, testAccountID, req)

	suite.Require().NoError(err)
	suite.Equal("RSD", settings.Currency)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
