package services

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
)

// SettingsSvcFacade manages the per-account bookkeeping configuration.
type SettingsSvcFacade interface {
	// GetSettings returns the account's settings, falling back to defaults
	// when none have been saved yet.
	GetSettings(ctx context.Context, accountID string) (*domain.Settings, error)

	// UpdateSettings replaces the account's settings.
	UpdateSettings(ctx context.Context, accountID string, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}

// RevenueSvcFacade manages takings entries. Fee and net amounts are always
// computed together from the gross amount and the applicable fee percent.
type RevenueSvcFacade interface {
	CreateRevenue(ctx context.Context, accountID string, req dto.CreateRevenueRequest) (*domain.Revenue, error)
	UpdateRevenue(ctx context.Context, accountID, revenueID string, req dto.UpdateRevenueRequest) (*domain.Revenue, error)
	ListRevenues(ctx context.Context, accountID string, from, to time.Time) ([]domain.Revenue, error)
	DeleteRevenue(ctx context.Context, accountID, revenueID string) error
}

// ExpenseSvcFacade manages cost entries. Net and VAT amounts are derived
// from the gross amount and VAT percent; paidNow is forced for cash-only
// expense types.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, accountID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// SetExpensePaid flips the paidNow flag of a SUPPLIER expense,
	// switching it between credit and cash.
	SetExpensePaid(ctx context.Context, accountID, expenseID string, paidNow bool) (*domain.Expense, error)

	ListExpenses(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, accountID, expenseID string) error
}

// SupplierSvcFacade manages suppliers and their running-balance ledgers.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, accountID string, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, accountID, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, accountID string) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, accountID, supplierID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, accountID, supplierID string) error

	// AddTransaction records a new ledger entry, resolving the VAT rate by
	// priority: request value, supplier default, account default, legacy
	// fallback. PAYMENT entries always get rate zero.
	AddTransaction(ctx context.Context, accountID, supplierID string, req dto.CreateSupplierTransactionRequest) (*domain.SupplierTransaction, error)

	DeleteTransaction(ctx context.Context, accountID, transactionID string) error

	// ListTransactions returns one page of a supplier's raw entries, newest
	// first, with a keyset token for the next page.
	ListTransactions(ctx context.Context, accountID, supplierID string, limit int, nextToken *string) ([]domain.SupplierTransaction, *string, error)

	// GetSupplierLedger builds the running-balance ledger over the
	// supplier's complete history and then applies the display filter.
	GetSupplierLedger(ctx context.Context, accountID, supplierID string, filter accounting.SupplierLedgerFilter) (*domain.SupplierLedger, error)
}

// LedgerSvcFacade builds the day-by-day cash ledger.
type LedgerSvcFacade interface {
	// GetDailyLedger returns one row per calendar day in [from, to]. The
	// starting balance for from is reconstructed by replaying all activity
	// before it on top of the account's absolute starting balance.
	GetDailyLedger(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyLedgerRow, error)
}

// ExportSvcFacade produces spreadsheet exports of an account's books.
type ExportSvcFacade interface {
	// ExportTransactions builds an xlsx workbook of revenues, expenses, and
	// supplier transactions for the range, returning the file contents and
	// a suggested filename.
	ExportTransactions(ctx context.Context, accountID string, from, to time.Time) ([]byte, string, error)
}
