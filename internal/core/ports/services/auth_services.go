package services

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade handles JWT access tokens and refresh tokens for accounts.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the account.
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, account *domain.Account) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against
	// the stored hash and returns the associated account.
	ValidateAndParseRefreshToken(ctx context.Context, accountID string, refreshTokenString string) (*domain.Account, error)
}

// GoogleOAuthHandlerSvcFacade handles the Google OAuth login flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token received from Google.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
