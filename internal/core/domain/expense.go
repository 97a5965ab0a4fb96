package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType classifies an expense entry.
type ExpenseType string

const (
	ExpenseSupplier        ExpenseType = "SUPPLIER"         // Supplier invoice, possibly on credit
	ExpenseSupplierPayment ExpenseType = "SUPPLIER_PAYMENT" // Cash settlement of supplier debt, no tax event
	ExpenseSalary          ExpenseType = "SALARY"           // Wages, carries employer contributions
	ExpenseOther           ExpenseType = "OTHER"
)

// Expense represents one recorded cost entry.
// Invariants: for all types except SUPPLIER_PAYMENT,
// NetAmount == GrossAmount / (1 + VatPercent/100) and
// VatAmount == GrossAmount - NetAmount. A SUPPLIER_PAYMENT carries
// VatPercent == 0 and VatAmount == 0.
// PaidNow is user-controlled only for SUPPLIER entries (credit vs.
// immediate payment); all other types are cash events by definition and
// have PaidNow forced to true.
type Expense struct {
	ExpenseID           string          `json:"expenseID"` // Primary Key (UUID)
	AccountID           string          `json:"accountID"`
	Date                time.Time       `json:"date"`
	GrossAmount         decimal.Decimal `json:"grossAmount"`
	ContributionsAmount decimal.Decimal `json:"contributionsAmount"` // Only meaningful for SALARY
	NetAmount           decimal.Decimal `json:"netAmount"`
	VatPercent          decimal.Decimal `json:"vatPercent"`
	VatAmount           decimal.Decimal `json:"vatAmount"`
	Type                ExpenseType     `json:"type"`
	SupplierID          *string         `json:"supplierID,omitempty"`
	PaidNow             bool            `json:"paidNow"`
	Note                string          `json:"note"`
	ReceiptURL          string          `json:"receiptURL,omitempty"`
	AuditFields
}

// CashImpact reports whether this expense reduces the cash balance on its
// date. An unpaid SUPPLIER invoice is a liability, not a cash outflow; it
// only hits the ledger when settled (via a SUPPLIER_PAYMENT entry, or when
// the invoice itself is flipped to PaidNow). Every other type is a cash
// event by definition. The daily ledger and the opening-balance replay
// must both route through this method.
func (e Expense) CashImpact() bool {
	return e.Type != ExpenseSupplier || e.PaidNow
}

// CashOutflow returns the amount this expense removes from cash on its
// date: the gross amount, plus employer contributions for SALARY entries.
// Zero when the expense has no cash impact.
func (e Expense) CashOutflow() decimal.Decimal {
	if !e.CashImpact() {
		return decimal.Zero
	}
	out := e.GrossAmount
	if e.Type == ExpenseSalary {
		out = out.Add(e.ContributionsAmount)
	}
	return out
}
