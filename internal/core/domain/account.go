package domain

import "time"

// Account is the tenant of the application: one restaurant with its own
// books, settings, and login credentials. Every revenue, expense, and
// supplier row belongs to exactly one account.
type Account struct {
	AccountID    string `json:"accountID"` // Primary Key (UUID)
	Name         string `json:"name"`      // Restaurant name
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	// Refresh token data (hashed, only one active refresh token per account)
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the subset of the Google userinfo response used
// during OAuth login.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
