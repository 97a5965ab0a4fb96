package dto

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to register a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"` // Restaurant name
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login or token refresh. The
// refresh token itself travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// GoogleCallbackRequest carries the ID token posted by the OAuth callback.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AccountResponse defines the public view of an account.
type AccountResponse struct {
	AccountID string    `json:"accountID"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		Name:      account.Name,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
	}
}
