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
	"github.com/kasa-app/kasa_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash *string, expiryTime *time.Time) error {
	args := m.Called(ctx, accountID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockSettingsRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Kasa Grill", Username: "kasagrill", Password: "correct horse"}

	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "kasagrill").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Username == "kasagrill" && a.AccountID != "" &&
			utils.CheckPasswordHash("correct horse", a.PasswordHash)
	})).Return(nil).Once()
	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.Currency == domain.DefaultCurrency && s.DefaultVatPercent.IntPart() == 10
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Kasa Grill", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UsernameTaken() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Kasa Grill", Username: "kasagrill", Password: "pw"}
	existing := &domain.Account{AccountID: "existing", Username: "kasagrill"}

	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "kasagrill").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestFindOrCreateByGoogleLogin_ExistingAccount() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "g-123", Email: "owner@example.com", VerifiedEmail: true}
	existing := &domain.Account{AccountID: "a1", Username: "google:g-123"}

	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "google:g-123").Return(existing, nil).Once()

	account, err := suite.service.FindOrCreateByGoogleLogin(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("a1", account.AccountID)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestFindOrCreateByGoogleLogin_UnverifiedEmailRejected() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "g-123", Email: "owner@example.com", VerifiedEmail: false}

	_, err := suite.service.FindOrCreateByGoogleLogin(ctx, info)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestFindOrCreateByGoogleLogin_CreatesNewAccount() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "g-456", Email: "owner@example.com", Name: "Owner", VerifiedEmail: true}

	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "google:g-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Username == "google:g-456" && a.Name == "Owner" && a.PasswordHash == ""
	})).Return(nil).Once()
	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.Anything).Return(nil).Once()

	account, err := suite.service.FindOrCreateByGoogleLogin(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("Owner", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()

	suite.mockAccountRepo.On("UpdateRefreshToken", ctx, testAccountID, (*string)(nil), (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, testAccountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
