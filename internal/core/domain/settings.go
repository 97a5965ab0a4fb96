package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is used when an account has not configured one.
const DefaultCurrency = "RSD"

// Settings holds the per-account bookkeeping configuration. It is a
// read-only input to the ledger builders.
type Settings struct {
	AccountID          string          `json:"accountID"`
	StartingBalance    decimal.Decimal `json:"startingBalance"`    // Absolute beginning-of-time cash balance
	DefaultVatPercent  decimal.Decimal `json:"defaultVatPercent"`  // Account-level PDV default
	DeliveryFeePercent decimal.Decimal `json:"deliveryFeePercent"` // Fee charged by the delivery platform
	Currency           string          `json:"currency"`
	AuditFields
}
