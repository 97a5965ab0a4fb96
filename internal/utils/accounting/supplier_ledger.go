package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalanceEntryID identifies the synthetic ledger entry that seeds a
// supplier's opening balance. It is never persisted.
const OpeningBalanceEntryID = "opening-balance"

const openingBalanceDescription = "Opening balance"

// BuildSupplierLedger walks a supplier's complete transaction history in
// chronological order and returns one running-balance-annotated row per
// entry plus an aggregate summary.
//
// When openingBalance is non-zero a synthetic CORRECTION entry is
// prepended, dated one second before the earliest real transaction so it
// always sorts first without colliding with real entries (or at
// openingBalanceDate when the supplier has no real transactions yet).
//
// Entries are ordered by (date, createdAt, id): multiple same-day entries
// must produce a deterministic running balance, so ties fall back to
// insertion order and finally to identity.
//
// fallbackVatRate is the already-resolved rate for entries without a
// transaction-level rate (supplier default, else account default, else the
// legacy fallback). PAYMENT entries always resolve to rate zero.
func BuildSupplierLedger(transactions []domain.SupplierTransaction, fallbackVatRate decimal.Decimal, openingBalance decimal.Decimal, openingBalanceDate time.Time) ([]domain.SupplierLedgerRow, domain.SupplierLedgerSummary) {
	entries := make([]domain.SupplierTransaction, len(transactions))
	copy(entries, transactions)

	if !openingBalance.IsZero() {
		var earliest time.Time
		for _, entry := range entries {
			if earliest.IsZero() || entry.Date.Before(earliest) {
				earliest = entry.Date
			}
		}
		openingDate := openingBalanceDate
		if !earliest.IsZero() && !openingDate.Before(earliest) {
			openingDate = earliest.Add(-time.Second)
		}
		zero := decimal.Zero
		entries = append([]domain.SupplierTransaction{{
			TransactionID: OpeningBalanceEntryID,
			Date:          openingDate,
			CreatedAt:     openingDate,
			Type:          domain.SupplierCorrection,
			Amount:        openingBalance,
			VatRate:       &zero,
			Description:   openingBalanceDescription,
		}}, entries...)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].TransactionID < entries[j].TransactionID
	})

	rows := make([]domain.SupplierLedgerRow, 0, len(entries))
	running := decimal.Zero
	summary := domain.SupplierLedgerSummary{
		TotalInvoiced: decimal.Zero,
		TotalPaid:     decimal.Zero,
		Outstanding:   decimal.Zero,
		TotalNet:      decimal.Zero,
		TotalVat:      decimal.Zero,
		TotalGross:    decimal.Zero,
	}

	for _, entry := range entries {
		gross := entry.Amount
		var vatRate, net, vat decimal.Decimal

		if entry.Type == domain.SupplierPayment {
			// A payment carries no tax event.
			vatRate = decimal.Zero
			net = gross
			vat = decimal.Zero
			running = running.Sub(gross)
			summary.TotalPaid = summary.TotalPaid.Add(gross)
		} else {
			vatRate = fallbackVatRate
			if entry.VatRate != nil {
				vatRate = *entry.VatRate
			}
			net, vat = VatBreakdown(gross, vatRate)
			running = running.Add(gross)
			summary.TotalInvoiced = summary.TotalInvoiced.Add(gross)
			summary.TotalGross = summary.TotalGross.Add(gross)
			summary.TotalNet = summary.TotalNet.Add(net)
			summary.TotalVat = summary.TotalVat.Add(vat)
		}

		rows = append(rows, domain.SupplierLedgerRow{
			TransactionID:  entry.TransactionID,
			Date:           entry.Date,
			Type:           entry.Type,
			Description:    entry.Description,
			InvoiceNumber:  entry.InvoiceNumber,
			GrossAmount:    gross,
			NetAmount:      net,
			VatAmount:      vat,
			VatRate:        vatRate,
			RunningBalance: running,
		})
	}

	summary.Outstanding = summary.TotalInvoiced.Sub(summary.TotalPaid)
	return rows, summary
}

// SupplierLedgerFilter narrows a built ledger for display. Filtering never
// re-runs the balance computation: balances are computed once over the
// complete history, so a filtered view still shows true chronological
// state rather than a recomputed subset total.
type SupplierLedgerFilter struct {
	From  *time.Time
	To    *time.Time
	Type  domain.SupplierTransactionType // empty means all types
	Query string                         // free-text over description and invoice number
}

// FilterSupplierLedgerRows applies f to already-built rows.
func FilterSupplierLedgerRows(rows []domain.SupplierLedgerRow, f SupplierLedgerFilter) []domain.SupplierLedgerRow {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	filtered := make([]domain.SupplierLedgerRow, 0, len(rows))
	for _, row := range rows {
		if f.Type != "" && row.Type != f.Type {
			continue
		}
		if f.From != nil && row.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && row.Date.After(*f.To) {
			continue
		}
		if query != "" {
			description := strings.ToLower(row.Description)
			invoiceNumber := strings.ToLower(row.InvoiceNumber)
			if !strings.Contains(description, query) && !strings.Contains(invoiceNumber, query) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}
