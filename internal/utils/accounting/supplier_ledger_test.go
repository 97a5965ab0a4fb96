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

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBuildSupplierLedger_RunningBalanceAndSummary(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{
			TransactionID: "t1",
			Date:          day("2024-01-05"),
			CreatedAt:     day("2024-01-05"),
			Type:          domain.SupplierInvoice,
			Amount:        dec("1200"),
			VatRate:       decPtr("20"),
			Description:   "flour and oil",
			InvoiceNumber: "INV-001",
		},
		{
			TransactionID: "t2",
			Date:          day("2024-01-10"),
			CreatedAt:     day("2024-01-10"),
			Type:          domain.SupplierPayment,
			Amount:        dec("700"),
			Description:   "bank transfer",
		},
		{
			TransactionID: "t3",
			Date:          day("2024-01-20"),
			CreatedAt:     day("2024-01-20"),
			Type:          domain.SupplierInvoice,
			Amount:        dec("550"),
			VatRate:       decPtr("10"),
			Description:   "vegetables",
		},
	}

	rows, summary := accounting.BuildSupplierLedger(transactions, dec("10"), decimal.Zero, time.Time{})

	require.Len(t, rows, 3)
	assert.True(t, dec("1200").Equal(rows[0].RunningBalance))
	assert.True(t, dec("500").Equal(rows[1].RunningBalance))
	assert.True(t, dec("1050").Equal(rows[2].RunningBalance))

	// Invoice VAT decomposition per row.
	assert.True(t, dec("1000").Equal(rows[0].NetAmount))
	assert.True(t, dec("200").Equal(rows[0].VatAmount))
	assert.True(t, dec("500").Equal(rows[2].NetAmount))
	assert.True(t, dec("50").Equal(rows[2].VatAmount))

	assert.True(t, dec("1750").Equal(summary.TotalInvoiced))
	assert.True(t, dec("700").Equal(summary.TotalPaid))
	assert.True(t, dec("1050").Equal(summary.Outstanding))
	assert.True(t, dec("1500").Equal(summary.TotalNet))
	assert.True(t, dec("250").Equal(summary.TotalVat))
	assert.True(t, dec("1750").Equal(summary.TotalGross))

	// No corrections: the final running balance reconciles with the summary.
	assert.True(t, rows[len(rows)-1].RunningBalance.Equal(summary.Outstanding))
}

func TestBuildSupplierLedger_PaymentCarriesNoVat(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{
			TransactionID: "p1",
			Date:          day("2024-02-01"),
			CreatedAt:     day("2024-02-01"),
			Type:          domain.SupplierPayment,
			Amount:        dec("330"),
			// Even a stored rate must not produce a tax event on a payment.
			VatRate: decPtr("20"),
		},
	}

	rows, summary := accounting.BuildSupplierLedger(transactions, dec("20"), decimal.Zero, time.Time{})

	require.Len(t, rows, 1)
	assert.True(t, rows[0].VatRate.IsZero())
	assert.True(t, rows[0].VatAmount.IsZero())
	assert.True(t, dec("330").Equal(rows[0].NetAmount))
	assert.True(t, dec("-330").Equal(rows[0].RunningBalance))
	assert.True(t, summary.TotalVat.IsZero())
}

func TestBuildSupplierLedger_FallbackVatRate(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{
			TransactionID: "i1",
			Date:          day("2024-02-01"),
			CreatedAt:     day("2024-02-01"),
			Type:          domain.SupplierInvoice,
			Amount:        dec("110"),
			// No transaction-level rate: the resolved fallback applies.
		},
	}

	rows, _ := accounting.BuildSupplierLedger(transactions, dec("10"), decimal.Zero, time.Time{})

	require.Len(t, rows, 1)
	assert.True(t, dec("10").Equal(rows[0].VatRate))
	assert.True(t, dec("100").Equal(rows[0].NetAmount))
	assert.True(t, dec("10").Equal(rows[0].VatAmount))
}

func TestBuildSupplierLedger_OpeningBalanceSortsFirst(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{
			TransactionID: "t1",
			Date:          day("2024-01-15"),
			CreatedAt:     day("2024-01-15"),
			Type:          domain.SupplierInvoice,
			Amount:        dec("100"),
			VatRate:       decPtr("0"),
		},
	}

	// Opening date after the earliest real transaction: the synthetic entry
	// must still be nudged strictly before it.
	rows, summary := accounting.BuildSupplierLedger(transactions, dec("10"), dec("400"), day("2024-03-01"))

	require.Len(t, rows, 2)
	assert.Equal(t, accounting.OpeningBalanceEntryID, rows[0].TransactionID)
	assert.Equal(t, domain.SupplierCorrection, rows[0].Type)
	assert.True(t, rows[0].Date.Before(transactions[0].Date))
	assert.True(t, dec("400").Equal(rows[0].RunningBalance))
	assert.True(t, dec("500").Equal(rows[1].RunningBalance))
	assert.True(t, dec("500").Equal(summary.Outstanding))
}

func TestBuildSupplierLedger_OpeningBalanceWithoutTransactions(t *testing.T) {
	created := day("2024-02-20")

	rows, summary := accounting.BuildSupplierLedger(nil, dec("10"), dec("250"), created)

	require.Len(t, rows, 1)
	assert.Equal(t, created, rows[0].Date)
	assert.True(t, dec("250").Equal(rows[0].RunningBalance))
	assert.True(t, dec("250").Equal(summary.Outstanding))
}

func TestBuildSupplierLedger_ZeroOpeningBalanceAddsNothing(t *testing.T) {
	rows, _ := accounting.BuildSupplierLedger(nil, dec("10"), decimal.Zero, day("2024-02-20"))
	assert.Empty(t, rows)
}

func TestBuildSupplierLedger_SameDayTieBreak(t *testing.T) {
	sameDay := day("2024-04-01")
	transactions := []domain.SupplierTransaction{
		{
			TransactionID: "later",
			Date:          sameDay,
			CreatedAt:     sameDay.Add(2 * time.Hour),
			Type:          domain.SupplierPayment,
			Amount:        dec("100"),
		},
		{
			TransactionID: "earlier",
			Date:          sameDay,
			CreatedAt:     sameDay.Add(1 * time.Hour),
			Type:          domain.SupplierInvoice,
			Amount:        dec("100"),
			VatRate:       decPtr("0"),
		},
	}

	// Creation order decides same-day ordering, regardless of input order.
	for i := 0; i < 5; i++ {
		rows, _ := accounting.BuildSupplierLedger(transactions, dec("10"), decimal.Zero, time.Time{})
		require.Len(t, rows, 2)
		assert.Equal(t, "earlier", rows[0].TransactionID)
		assert.Equal(t, "later", rows[1].TransactionID)
		assert.True(t, dec("100").Equal(rows[0].RunningBalance))
		assert.True(t, rows[1].RunningBalance.IsZero())
	}
}

func TestBuildSupplierLedger_DoesNotMutateInput(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{TransactionID: "b", Date: day("2024-01-02"), CreatedAt: day("2024-01-02"), Type: domain.SupplierInvoice, Amount: dec("10"), VatRate: decPtr("0")},
		{TransactionID: "a", Date: day("2024-01-01"), CreatedAt: day("2024-01-01"), Type: domain.SupplierInvoice, Amount: dec("20"), VatRate: decPtr("0")},
	}

	accounting.BuildSupplierLedger(transactions, dec("10"), dec("5"), day("2024-01-01"))

	assert.Equal(t, "b", transactions[0].TransactionID)
	assert.Equal(t, "a", transactions[1].TransactionID)
}

func TestFilterSupplierLedgerRows(t *testing.T) {
	transactions := []domain.SupplierTransaction{
		{TransactionID: "t1", Date: day("2024-01-05"), CreatedAt: day("2024-01-05"), Type: domain.SupplierInvoice, Amount: dec("100"), VatRate: decPtr("0"), Description: "Flour delivery", InvoiceNumber: "INV-17"},
		{TransactionID: "t2", Date: day("2024-02-05"), CreatedAt: day("2024-02-05"), Type: domain.SupplierPayment, Amount: dec("60"), Description: "wire"},
		{TransactionID: "t3", Date: day("2024-03-05"), CreatedAt: day("2024-03-05"), Type: domain.SupplierInvoice, Amount: dec("40"), VatRate: decPtr("0"), Description: "oil"},
	}
	rows, _ := accounting.BuildSupplierLedger(transactions, dec("10"), decimal.Zero, time.Time{})
	require.Len(t, rows, 3)

	t.Run("by type", func(t *testing.T) {
		filtered := accounting.FilterSupplierLedgerRows(rows, accounting.SupplierLedgerFilter{Type: domain.SupplierPayment})
		require.Len(t, filtered, 1)
		assert.Equal(t, "t2", filtered[0].TransactionID)
	})

	t.Run("by date range keeps original balances", func(t *testing.T) {
		from := day("2024-02-01")
		filtered := accounting.FilterSupplierLedgerRows(rows, accounting.SupplierLedgerFilter{From: &from})
		require.Len(t, filtered, 2)
		// The balance column reflects true chronological state, not a
		// recomputed subset total.
		assert.True(t, dec("40").Equal(filtered[0].RunningBalance))
		assert.True(t, dec("80").Equal(filtered[1].RunningBalance))
	})

	t.Run("by free text over description and invoice number", func(t *testing.T) {
		filtered := accounting.FilterSupplierLedgerRows(rows, accounting.SupplierLedgerFilter{Query: "inv-17"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "t1", filtered[0].TransactionID)

		filtered = accounting.FilterSupplierLedgerRows(rows, accounting.SupplierLedgerFilter{Query: "FLOUR"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "t1", filtered[0].TransactionID)
	})

	t.Run("empty filter keeps everything", func(t *testing.T) {
		filtered := accounting.FilterSupplierLedgerRows(rows, accounting.SupplierLedgerFilter{})
		assert.Equal(t, rows, filtered)
	})
}
