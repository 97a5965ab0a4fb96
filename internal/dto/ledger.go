package dto

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyLedgerQuery captures the date range for the cash ledger endpoint.
// Both bounds default to the last 30 days when omitted.
type DailyLedgerQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// DailyLedgerRowResponse is one day of the cash ledger.
type DailyLedgerRowResponse struct {
	Date              string          `json:"date"`
	IncomeLocalNet    decimal.Decimal `json:"incomeLocalNet"`
	IncomeDeliveryNet decimal.Decimal `json:"incomeDeliveryNet"`
	IncomeTotalNet    decimal.Decimal `json:"incomeTotalNet"`
	ExpensesCashTotal decimal.Decimal `json:"expensesCashTotal"`
	VatTotal          decimal.Decimal `json:"vatTotal"`
	RunningBalance    decimal.Decimal `json:"runningBalance"`
}

// DailyLedgerResponse wraps the ledger rows with the account's currency.
type DailyLedgerResponse struct {
	Currency string                   `json:"currency"`
	Ledger   []DailyLedgerRowResponse `json:"ledger"`
}

// ToDailyLedgerResponse converts ledger rows to the response DTO
func ToDailyLedgerResponse(currency string, rows []domain.DailyLedgerRow) DailyLedgerResponse {
	out := make([]DailyLedgerRowResponse, len(rows))
	for i, row := range rows {
		out[i] = DailyLedgerRowResponse{
			Date:              row.Date.Format("2006-01-02"),
			IncomeLocalNet:    row.IncomeLocalNet,
			IncomeDeliveryNet: row.IncomeDeliveryNet,
			IncomeTotalNet:    row.IncomeTotalNet,
			ExpensesCashTotal: row.ExpensesCashTotal,
			VatTotal:          row.VatTotal,
			RunningBalance:    row.RunningBalance,
		}
	}
	return DailyLedgerResponse{Currency: currency, Ledger: out}
}
