package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierTransactionType classifies one entry of a supplier's ledger.
type SupplierTransactionType string

const (
	SupplierInvoice    SupplierTransactionType = "INVOICE"    // Increases the balance owed
	SupplierPayment    SupplierTransactionType = "PAYMENT"    // Reduces the balance owed, never carries VAT
	SupplierCorrection SupplierTransactionType = "CORRECTION" // Manual balance fix, treated like an invoice
)

// SupplierTransaction is one entry of a supplier's running-balance ledger.
// Amount is always a non-negative magnitude; the type determines the sign
// applied to the running balance. VatRate is the transaction-level rate;
// when nil the rate is resolved from the supplier default, then the
// account default, then the legacy fallback. PAYMENT entries always
// resolve to rate zero.
type SupplierTransaction struct {
	TransactionID string                  `json:"transactionID"` // Primary Key (UUID)
	AccountID     string                  `json:"accountID"`
	SupplierID    string                  `json:"supplierID"`
	Date          time.Time               `json:"date"`
	Type          SupplierTransactionType `json:"type"`
	Amount        decimal.Decimal         `json:"amount"`
	VatRate       *decimal.Decimal        `json:"vatRate,omitempty"`
	Description   string                  `json:"description"`
	InvoiceNumber string                  `json:"invoiceNumber,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"` // Tie-break for same-day ordering
}
