package accounting

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dayKeyFormat = "2006-01-02"

// dayOf normalizes a timestamp to its calendar day. Time-of-day is
// ignored for bucketing; the record's own date is authoritative.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildDailyLedger produces one row per calendar day in [from, to]
// inclusive, even for days with no transactions. Each row carries the
// per-channel net income totals, the cash-impacting expense total, the
// day's VAT total, and the cumulative running balance seeded with
// startingBalance.
//
// VAT amounts are accumulated for every expense regardless of cash
// impact: VAT is a reporting total, not a cash-flow total. Whether an
// expense reduces cash is decided solely by Expense.CashImpact, so the
// credit-vs-paid asymmetry for supplier invoices lives in one place.
//
// A range with from after to yields an empty slice.
func BuildDailyLedger(startingBalance decimal.Decimal, revenues []domain.Revenue, expenses []domain.Expense, from, to time.Time) []domain.DailyLedgerRow {
	first := dayOf(from)
	last := dayOf(to)
	if first.After(last) {
		return []domain.DailyLedgerRow{}
	}

	revenueByDay := make(map[string][]domain.Revenue)
	for _, rev := range revenues {
		key := rev.Date.Format(dayKeyFormat)
		revenueByDay[key] = append(revenueByDay[key], rev)
	}

	expenseByDay := make(map[string][]domain.Expense)
	for _, exp := range expenses {
		key := exp.Date.Format(dayKeyFormat)
		expenseByDay[key] = append(expenseByDay[key], exp)
	}

	days := int(last.Sub(first).Hours()/24) + 1
	rows := make([]domain.DailyLedgerRow, 0, days)
	running := startingBalance

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)

		incomeLocalNet := decimal.Zero
		incomeDeliveryNet := decimal.Zero
		for _, rev := range revenueByDay[key] {
			if rev.Channel == domain.ChannelLocal {
				incomeLocalNet = incomeLocalNet.Add(rev.NetAmount)
			} else {
				incomeDeliveryNet = incomeDeliveryNet.Add(rev.NetAmount)
			}
		}
		incomeTotalNet := incomeLocalNet.Add(incomeDeliveryNet)

		expensesCashTotal := decimal.Zero
		vatTotal := decimal.Zero
		for _, exp := range expenseByDay[key] {
			vatTotal = vatTotal.Add(exp.VatAmount)
			expensesCashTotal = expensesCashTotal.Add(exp.CashOutflow())
		}

		running = running.Add(incomeTotalNet).Sub(expensesCashTotal)

		rows = append(rows, domain.DailyLedgerRow{
			Date:              day,
			IncomeLocalNet:    incomeLocalNet,
			IncomeDeliveryNet: incomeDeliveryNet,
			IncomeTotalNet:    incomeTotalNet,
			ExpensesCashTotal: expensesCashTotal,
			VatTotal:          vatTotal,
			RunningBalance:    running,
		})
	}

	return rows
}

// ReplayCashBalance reconstructs the cash balance at the start of a
// sub-range by replaying every revenue net amount and every cash-impacting
// expense outflow strictly before that point, on top of the account's
// absolute starting balance. It applies the identical cash-impact rule as
// BuildDailyLedger; any divergence between the two would silently corrupt
// every balance after the replay point.
func ReplayCashBalance(startingBalance decimal.Decimal, revenues []domain.Revenue, expenses []domain.Expense) decimal.Decimal {
	running := startingBalance
	for _, rev := range revenues {
		running = running.Add(rev.NetAmount)
	}
	for _, exp := range expenses {
		running = running.Sub(exp.CashOutflow())
	}
	return running
}
