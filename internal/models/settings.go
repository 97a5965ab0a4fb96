package models

import "github.com/shopspring/decimal"

// Settings is the storage representation of per-account configuration.
type Settings struct {
	AccountID          string          `db:"account_id"`
	StartingBalance    decimal.Decimal `db:"starting_balance"`
	DefaultVatPercent  decimal.Decimal `db:"default_vat_percent"`
	DeliveryFeePercent decimal.Decimal `db:"delivery_fee_percent"`
	Currency           string          `db:"currency"`
	AuditFields
}
