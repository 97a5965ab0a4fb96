package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/utils"
)

// apiTokenService implements the APITokenSvc interface
type apiTokenService struct {
	tokenRepo  repositories.APITokenRepository
	accountSvc portssvc.AccountSvcFacade
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo repositories.APITokenRepository, accountSvc portssvc.AccountSvcFacade) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo:  tokenRepo,
		accountSvc: accountSvc,
	}
}

// CreateToken generates a new API token for the account
func (s *apiTokenService) CreateToken(ctx context.Context, accountID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	if accountID == "" {
		return "", nil, errors.New("account ID is required")
	}
	if name == "" {
		return "", nil, errors.New("token name is required")
	}

	// Generate a random token
	token, err := generateSecureToken(32) // 32 bytes = 256 bits
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Store a deterministic hash so validation can look the token up.
	tokenHash := utils.HashRefreshToken(token)

	// Calculate expiration time
	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := time.Now().Add(*expiresIn)
		expiresAt = &expiry
	}

	apiToken := &domain.APIToken{
		AccountID: accountID,
		Name:      name,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}

	if err := s.tokenRepo.Create(ctx, apiToken); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	// Return the plaintext token (only time it's available) and the token details
	return token, apiToken, nil
}

// ListTokens returns all API tokens for an account
func (s *apiTokenService) ListTokens(ctx context.Context, accountID string) ([]domain.APIToken, error) {
	if accountID == "" {
		return nil, errors.New("account ID is required")
	}

	tokens, err := s.tokenRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	return tokens, nil
}

// RevokeToken deletes a specific API token for an account
func (s *apiTokenService) RevokeToken(ctx context.Context, accountID, tokenID string) error {
	if accountID == "" || tokenID == "" {
		return errors.New("account ID and token ID are required")
	}

	// Verify the token belongs to the account
	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to find token: %w", err)
	}

	if token.AccountID != accountID {
		return errors.New("token not found")
	}

	if err := s.tokenRepo.Delete(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// RevokeAllTokens deletes all API tokens for an account
func (s *apiTokenService) RevokeAllTokens(ctx context.Context, accountID string) error {
	if accountID == "" {
		return errors.New("account ID is required")
	}

	if err := s.tokenRepo.DeleteByAccountID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to revoke all tokens: %w", err)
	}

	return nil
}

// ValidateToken checks if a token is valid and returns the associated account
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Account, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	// Look the token up by the hash of the presented value
	token, err := s.tokenRepo.FindByToken(ctx, utils.HashRefreshToken(tokenString))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if token.IsExpired() {
		// Auto-revoke expired tokens
		_ = s.tokenRepo.Delete(ctx, token.ID)
		return nil, errors.New("token has expired")
	}

	// Update last used timestamp; failure here must not fail validation
	token.UpdateLastUsed()
	_ = s.tokenRepo.Update(ctx, token)

	account, err := s.accountSvc.GetAccountByID(ctx, token.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// CleanupExpired soft-deletes every token past its expiry.
func (s *apiTokenService) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := s.tokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clean up expired tokens: %w", err)
	}
	return count, nil
}

// generateSecureToken generates a secure random token
func generateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	// Use URL-safe base64 encoding without padding
	return "kasa_" + base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b), nil
}
