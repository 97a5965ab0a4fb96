package accounting_test

import (
	"testing"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildDailyLedger_RunningBalance(t *testing.T) {
	revenues := []domain.Revenue{
		{
			Date:      day("2024-01-01"),
			Amount:    dec("200"),
			Channel:   domain.ChannelLocal,
			FeeAmount: dec("0"),
			NetAmount: dec("200"),
		},
		{
			Date:      day("2024-01-02"),
			Amount:    dec("100"),
			Channel:   domain.ChannelDelivery,
			FeeAmount: dec("10"),
			NetAmount: dec("90"),
		},
	}
	expenses := []domain.Expense{
		{
			Date:        day("2024-01-01"),
			GrossAmount: dec("50"),
			Type:        domain.ExpenseSupplierPayment,
			PaidNow:     true,
		},
	}

	rows := accounting.BuildDailyLedger(dec("100"), revenues, expenses, day("2024-01-01"), day("2024-01-02"))

	require.Len(t, rows, 2)
	assert.True(t, dec("250").Equal(rows[0].RunningBalance), "day 1 balance: got %s", rows[0].RunningBalance)
	assert.True(t, dec("340").Equal(rows[1].RunningBalance), "day 2 balance: got %s", rows[1].RunningBalance)
	assert.True(t, dec("200").Equal(rows[0].IncomeLocalNet))
	assert.True(t, dec("90").Equal(rows[1].IncomeDeliveryNet))
	assert.True(t, dec("90").Equal(rows[1].IncomeTotalNet))
	assert.True(t, dec("50").Equal(rows[0].ExpensesCashTotal))
}

func TestBuildDailyLedger_ZeroFillsEmptyDays(t *testing.T) {
	revenues := []domain.Revenue{
		{Date: day("2024-03-01"), Channel: domain.ChannelLocal, NetAmount: dec("120")},
	}

	rows := accounting.BuildDailyLedger(dec("10"), revenues, nil, day("2024-03-01"), day("2024-03-03"))

	require.Len(t, rows, 3)
	for _, row := range rows[1:] {
		assert.True(t, row.IncomeTotalNet.IsZero())
		assert.True(t, row.ExpensesCashTotal.IsZero())
		assert.True(t, row.VatTotal.IsZero())
		// Balance carries over unchanged through empty days.
		assert.True(t, dec("130").Equal(row.RunningBalance), "got %s", row.RunningBalance)
	}
	assert.Equal(t, day("2024-03-02"), rows[1].Date)
	assert.Equal(t, day("2024-03-03"), rows[2].Date)
}

func TestBuildDailyLedger_CreditVsPaidAsymmetry(t *testing.T) {
	invoice := domain.Expense{
		Date:        day("2024-02-01"),
		GrossAmount: dec("300"),
		NetAmount:   dec("250"),
		VatPercent:  dec("20"),
		VatAmount:   dec("50"),
		Type:        domain.ExpenseSupplier,
		PaidNow:     false,
	}

	from, to := day("2024-02-01"), day("2024-02-03")

	onCredit := accounting.BuildDailyLedger(dec("1000"), nil, []domain.Expense{invoice}, from, to)
	require.Len(t, onCredit, 3)

	// An unpaid supplier invoice is a liability, not a cash outflow. VAT is
	// still reported for the day.
	assert.True(t, onCredit[0].ExpensesCashTotal.IsZero())
	assert.True(t, dec("50").Equal(onCredit[0].VatTotal))
	assert.True(t, dec("1000").Equal(onCredit[0].RunningBalance))

	invoice.PaidNow = true
	paid := accounting.BuildDailyLedger(dec("1000"), nil, []domain.Expense{invoice}, from, to)

	assert.True(t, dec("300").Equal(paid[0].ExpensesCashTotal))
	assert.True(t, dec("700").Equal(paid[0].RunningBalance))

	// Toggling paidNow changes exactly one day's cash total and every
	// subsequent balance by the same delta.
	for i := range paid {
		delta := onCredit[i].RunningBalance.Sub(paid[i].RunningBalance)
		assert.True(t, dec("300").Equal(delta), "day %d delta: got %s", i, delta)
	}
	for i := 1; i < len(paid); i++ {
		assert.True(t, paid[i].ExpensesCashTotal.IsZero())
	}
}

func TestBuildDailyLedger_SalaryAddsContributions(t *testing.T) {
	salary := domain.Expense{
		Date:                day("2024-05-10"),
		GrossAmount:         dec("1000"),
		ContributionsAmount: dec("350"),
		Type:                domain.ExpenseSalary,
		PaidNow:             true,
	}

	rows := accounting.BuildDailyLedger(dec("2000"), nil, []domain.Expense{salary}, day("2024-05-10"), day("2024-05-10"))

	require.Len(t, rows, 1)
	assert.True(t, dec("1350").Equal(rows[0].ExpensesCashTotal))
	assert.True(t, dec("650").Equal(rows[0].RunningBalance))
}

func TestBuildDailyLedger_EmptyRange(t *testing.T) {
	rows := accounting.BuildDailyLedger(dec("100"), nil, nil, day("2024-01-02"), day("2024-01-01"))
	assert.Empty(t, rows)
}

func TestBuildDailyLedger_IgnoresTimeOfDayForBucketing(t *testing.T) {
	revenues := []domain.Revenue{
		{Date: time.Date(2024, 6, 1, 23, 45, 0, 0, time.UTC), Channel: domain.ChannelLocal, NetAmount: dec("80")},
	}

	rows := accounting.BuildDailyLedger(dec("0"), revenues, nil, day("2024-06-01"), day("2024-06-01"))

	require.Len(t, rows, 1)
	assert.True(t, dec("80").Equal(rows[0].IncomeTotalNet))
}

func TestBuildDailyLedger_Idempotent(t *testing.T) {
	revenues := []domain.Revenue{
		{Date: day("2024-01-01"), Channel: domain.ChannelLocal, NetAmount: dec("55.55")},
		{Date: day("2024-01-01"), Channel: domain.ChannelDelivery, NetAmount: dec("44.45")},
	}
	expenses := []domain.Expense{
		{Date: day("2024-01-01"), GrossAmount: dec("12.34"), VatAmount: dec("2.06"), Type: domain.ExpenseOther, PaidNow: true},
	}

	first := accounting.BuildDailyLedger(dec("9.99"), revenues, expenses, day("2024-01-01"), day("2024-01-02"))
	second := accounting.BuildDailyLedger(dec("9.99"), revenues, expenses, day("2024-01-01"), day("2024-01-02"))

	assert.Equal(t, first, second)
}

func TestReplayCashBalance_MatchesLedgerRule(t *testing.T) {
	revenues := []domain.Revenue{
		{Date: day("2024-01-01"), Channel: domain.ChannelLocal, NetAmount: dec("200")},
		{Date: day("2024-01-02"), Channel: domain.ChannelDelivery, NetAmount: dec("90")},
	}
	expenses := []domain.Expense{
		{Date: day("2024-01-01"), GrossAmount: dec("50"), Type: domain.ExpenseSupplierPayment, PaidNow: true},
		// On credit: must not affect the replayed balance either.
		{Date: day("2024-01-02"), GrossAmount: dec("500"), Type: domain.ExpenseSupplier, PaidNow: false},
	}

	replayed := accounting.ReplayCashBalance(dec("100"), revenues, expenses)

	rows := accounting.BuildDailyLedger(dec("100"), revenues, expenses, day("2024-01-01"), day("2024-01-02"))
	require.NotEmpty(t, rows)
	assert.True(t, rows[len(rows)-1].RunningBalance.Equal(replayed),
		"replay %s != ledger tail %s", replayed, rows[len(rows)-1].RunningBalance)
	assert.True(t, dec("340").Equal(replayed))
}

func TestBuildDailyLedger_VatTotalIncludesCreditInvoices(t *testing.T) {
	expenses := []domain.Expense{
		{Date: day("2024-04-01"), GrossAmount: dec("120"), VatAmount: dec("20"), Type: domain.ExpenseSupplier, PaidNow: false},
		{Date: day("2024-04-01"), GrossAmount: dec("240"), VatAmount: dec("40"), Type: domain.ExpenseOther, PaidNow: true},
	}

	rows := accounting.BuildDailyLedger(decimal.Zero, nil, expenses, day("2024-04-01"), day("2024-04-01"))

	require.Len(t, rows, 1)
	assert.True(t, dec("60").Equal(rows[0].VatTotal))
	assert.True(t, dec("240").Equal(rows[0].ExpensesCashTotal))
}
