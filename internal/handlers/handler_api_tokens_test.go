package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/handlers"
	"github.com/kasa-app/kasa_backend/internal/handlers/dto"
	"github.com/kasa-app/kasa_backend/internal/middleware"
)

// --- Mock APITokenSvc ---

type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, accountID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, accountID, name, expiresIn)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}

func (m *MockAPITokenService) ListTokens(ctx context.Context, accountID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}

func (m *MockAPITokenService) RevokeToken(ctx context.Context, accountID, tokenID string) error {
	args := m.Called(ctx, accountID, tokenID)
	return args.Error(0)
}

func (m *MockAPITokenService) RevokeAllTokens(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAPITokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Account, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAPITokenService) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)

// --- Test Suite ---

type APITokenHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockTokenSvc *MockAPITokenService
	jwtSecret    string
}

func (suite *APITokenHandlerTestSuite) generateTestToken(accountID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "kasa-test",
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *APITokenHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTokenSvc = new(MockAPITokenService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAPITokenRoutes(v1, suite.mockTokenSvc)
}

func (suite *APITokenHandlerTestSuite) doRequest(method, url, accountID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if accountID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *APITokenHandlerTestSuite) TestCreateToken_Success() {
	accountID := uuid.NewString()
	tokenID := uuid.NewString()
	now := time.Now()

	suite.mockTokenSvc.On("CreateToken",
		mock.Anything,
		accountID,
		"export-script",
		(*time.Duration)(nil),
	).Return("kasa_plaintext-token", &domain.APIToken{
		ID:        tokenID,
		AccountID: accountID,
		Name:      "export-script",
		CreatedAt: now,
	}, nil).Once()

	body, _ := json.Marshal(dto.CreateAPITokenRequest{Name: "export-script"})
	w := suite.doRequest(http.MethodPost, "/api/v1/tokens", accountID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CreateAPITokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("kasa_plaintext-token", resp.TokenString)
	suite.Equal(tokenID, resp.Details.ID)
	suite.Equal("export-script", resp.Details.Name)

	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestCreateToken_NameTooShort() {
	accountID := uuid.NewString()

	body, _ := json.Marshal(dto.CreateAPITokenRequest{Name: "ab"})
	w := suite.doRequest(http.MethodPost, "/api/v1/tokens", accountID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "CreateToken")
}

func (suite *APITokenHandlerTestSuite) TestCreateToken_MissingAuth() {
	w := suite.doRequest(http.MethodPost, "/api/v1/tokens", "", []byte(`{"name":"export-script"}`))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "CreateToken")
}

func (suite *APITokenHandlerTestSuite) TestListTokens_Success() {
	accountID := uuid.NewString()
	now := time.Now()

	suite.mockTokenSvc.On("ListTokens", mock.Anything, accountID).Return([]domain.APIToken{
		{ID: uuid.NewString(), AccountID: accountID, Name: "export-script", CreatedAt: now},
		{ID: uuid.NewString(), AccountID: accountID, Name: "dashboard", CreatedAt: now.Add(-time.Hour)},
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/tokens", accountID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListAPITokensResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("export-script", resp[0].Name)

	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_NotFound() {
	accountID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenSvc.On("RevokeToken", mock.Anything, accountID, tokenID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/tokens/"+tokenID, accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *APITokenHandlerTestSuite) TestRevokeToken_InvalidID() {
	accountID := uuid.NewString()

	w := suite.doRequest(http.MethodDelete, "/api/v1/tokens/not-a-uuid", accountID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "RevokeToken")
}

func (suite *APITokenHandlerTestSuite) TestRevokeAllTokens_Success() {
	accountID := uuid.NewString()

	suite.mockTokenSvc.On("RevokeAllTokens", mock.Anything, accountID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/tokens", accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func TestAPITokenHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APITokenHandlerTestSuite))
}
