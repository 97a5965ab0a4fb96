package repositories

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUsername retrieves an account by its login username.
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateRefreshToken stores the refresh token hash and expiry for an account.
	// A nil hash clears the stored token (logout).
	UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash *string, expiryTime *time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
