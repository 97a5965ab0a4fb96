package repositories

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// APITokenRepository defines the interface for API token data access operations
type APITokenRepository interface {
	// Create persists a new API token
	Create(ctx context.Context, token *domain.APIToken) error

	// FindByID retrieves an API token by its ID
	FindByID(ctx context.Context, id string) (*domain.APIToken, error)

	// FindByAccountID retrieves all API tokens for a specific account
	FindByAccountID(ctx context.Context, accountID string) ([]domain.APIToken, error)

	// FindByToken finds a token by its plaintext value (used for validation)
	FindByToken(ctx context.Context, tokenString string) (*domain.APIToken, error)

	// Update updates an existing API token (e.g., to update last_used_at)
	Update(ctx context.Context, token *domain.APIToken) error

	// Delete removes an API token by ID
	Delete(ctx context.Context, id string) error

	// DeleteByAccountID removes all API tokens for a specific account
	DeleteByAccountID(ctx context.Context, accountID string) error

	// DeleteExpired removes all API tokens that expired before the given time
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
