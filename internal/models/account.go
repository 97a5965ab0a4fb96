package models

import "time"

// Account is the storage representation of a tenant account.
type Account struct {
	AccountID              string     `db:"account_id"`
	Name                   string     `db:"name"`
	Username               string     `db:"username"`
	PasswordHash           string     `db:"password_hash"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
