package services

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// APITokenSvc defines the interface for API token management
type APITokenSvc interface {
	// CreateToken generates a new API token for the account. The plaintext
	// token is returned exactly once.
	CreateToken(ctx context.Context, accountID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)

	// ListTokens returns all API tokens for an account
	ListTokens(ctx context.Context, accountID string) ([]domain.APIToken, error)

	// RevokeToken deletes a specific API token for an account
	RevokeToken(ctx context.Context, accountID, tokenID string) error

	// RevokeAllTokens deletes all API tokens for an account
	RevokeAllTokens(ctx context.Context, accountID string) error

	// ValidateToken checks if a token is valid and returns the associated account
	ValidateToken(ctx context.Context, tokenString string) (*domain.Account, error)

	// CleanupExpired soft-deletes tokens past their expiry and returns the count
	CleanupExpired(ctx context.Context) (int64, error)
}
