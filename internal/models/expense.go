package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the storage representation of a cost entry.
type Expense struct {
	ExpenseID           string          `db:"expense_id"`
	AccountID           string          `db:"account_id"`
	Date                time.Time       `db:"date"`
	GrossAmount         decimal.Decimal `db:"gross_amount"`
	ContributionsAmount decimal.Decimal `db:"contributions_amount"`
	NetAmount           decimal.Decimal `db:"net_amount"`
	VatPercent          decimal.Decimal `db:"vat_percent"`
	VatAmount           decimal.Decimal `db:"vat_amount"`
	Type                string          `db:"type"`
	SupplierID          *string         `db:"supplier_id"`
	PaidNow             bool            `db:"paid_now"`
	Note                string          `db:"note"`
	ReceiptURL          string          `db:"receipt_url"`
	AuditFields
}
