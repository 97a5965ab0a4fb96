package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierTransaction is the storage representation of one supplier
// ledger entry.
type SupplierTransaction struct {
	TransactionID string           `db:"transaction_id"`
	AccountID     string           `db:"account_id"`
	SupplierID    string           `db:"supplier_id"`
	Date          time.Time        `db:"date"`
	Type          string           `db:"type"`
	Amount        decimal.Decimal  `db:"amount"`
	VatRate       *decimal.Decimal `db:"vat_rate"`
	Description   string           `db:"description"`
	InvoiceNumber string           `db:"invoice_number"`
	CreatedAt     time.Time        `db:"created_at"`
}
