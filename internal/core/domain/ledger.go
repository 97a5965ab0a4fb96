package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyLedgerRow is one calendar day of the cash ledger. Days without
// transactions still produce a row with zeroed totals and a carried-over
// running balance.
type DailyLedgerRow struct {
	Date              time.Time       `json:"date"`
	IncomeLocalNet    decimal.Decimal `json:"incomeLocalNet"`
	IncomeDeliveryNet decimal.Decimal `json:"incomeDeliveryNet"`
	IncomeTotalNet    decimal.Decimal `json:"incomeTotalNet"`
	ExpensesCashTotal decimal.Decimal `json:"expensesCashTotal"`
	VatTotal          decimal.Decimal `json:"vatTotal"`
	RunningBalance    decimal.Decimal `json:"runningBalance"`
}

// SupplierLedgerRow is one chronological entry of a supplier's ledger,
// annotated with the running balance after the entry was applied.
type SupplierLedgerRow struct {
	TransactionID  string                  `json:"transactionID"`
	Date           time.Time               `json:"date"`
	Type           SupplierTransactionType `json:"type"`
	Description    string                  `json:"description"`
	InvoiceNumber  string                  `json:"invoiceNumber,omitempty"`
	GrossAmount    decimal.Decimal         `json:"grossAmount"`
	NetAmount      decimal.Decimal         `json:"netAmount"`
	VatAmount      decimal.Decimal         `json:"vatAmount"`
	VatRate        decimal.Decimal         `json:"vatRate"`
	RunningBalance decimal.Decimal         `json:"runningBalance"`
}

// SupplierLedger bundles everything the supplier-details view needs: the
// supplier itself, its filtered ledger rows, the summary over the complete
// history, and the VAT rate that applies to new entries.
type SupplierLedger struct {
	Supplier           Supplier              `json:"supplier"`
	Rows               []SupplierLedgerRow   `json:"rows"`
	Summary            SupplierLedgerSummary `json:"summary"`
	ResolvedVatPercent decimal.Decimal       `json:"resolvedVatPercent"`
	Currency           string                `json:"currency"`
}

// SupplierLedgerSummary aggregates a supplier's complete ledger.
// Outstanding is the headline figure: what is currently owed.
type SupplierLedgerSummary struct {
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	TotalNet      decimal.Decimal `json:"totalNet"`
	TotalVat      decimal.Decimal `json:"totalVat"`
	TotalGross    decimal.Decimal `json:"totalGross"`
}
