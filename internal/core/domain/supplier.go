package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier represents one vendor the restaurant buys from.
// OpeningBalance seeds the supplier ledger as a synthetic leading
// CORRECTION entry; it never mutates real transaction history.
type Supplier struct {
	SupplierID     string           `json:"supplierID"` // Primary Key (UUID)
	AccountID      string           `json:"accountID"`
	Number         string           `json:"number"` // Internal vendor number
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	VatPercent     *decimal.Decimal `json:"vatPercent,omitempty"` // Supplier-level PDV default
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
