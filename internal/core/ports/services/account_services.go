package services

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/dto"
)

// AccountReaderSvc defines read operations on accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByUsername retrieves an account by its login username.
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations on accounts
type AccountWriterSvc interface {
	// CreateAccount registers a new account with a hashed password and
	// default settings.
	CreateAccount(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// FindOrCreateByGoogleLogin resolves a verified Google login to an
	// account, creating one on first login.
	FindOrCreateByGoogleLogin(ctx context.Context, info domain.GoogleUserInfo) (*domain.Account, error)

	// StoreRefreshToken persists the hash and expiry of a freshly issued
	// refresh token.
	StoreRefreshToken(ctx context.Context, accountID, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
