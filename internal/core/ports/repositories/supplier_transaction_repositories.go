package repositories

import (
	"context"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// SupplierTransactionReader defines read operations for supplier ledger entries
type SupplierTransactionReader interface {
	// FindTransactionByID retrieves a specific entry scoped to an account.
	FindTransactionByID(ctx context.Context, accountID, transactionID string) (*domain.SupplierTransaction, error)

	// FindTransactionsBySupplier retrieves a supplier's complete transaction
	// history ordered by (date, created_at) ascending. The ledger builder
	// needs the full history; range filtering happens after balances are
	// computed.
	FindTransactionsBySupplier(ctx context.Context, accountID, supplierID string) ([]domain.SupplierTransaction, error)

	// FindTransactionsBySupplierPaginated retrieves one page of a supplier's
	// entries ordered by (date, created_at) descending. nextToken is a
	// keyset cursor; nil means start from the newest entry. The returned
	// token is nil when no further pages exist.
	FindTransactionsBySupplierPaginated(ctx context.Context, accountID, supplierID string, limit int, nextToken *string) ([]domain.SupplierTransaction, *string, error)
}

// SupplierTransactionWriter defines write operations for supplier ledger entries
type SupplierTransactionWriter interface {
	// SaveTransaction persists a new supplier ledger entry.
	SaveTransaction(ctx context.Context, transaction domain.SupplierTransaction) error

	// DeleteTransaction removes an entry scoped to an account.
	DeleteTransaction(ctx context.Context, accountID, transactionID string) error
}

// SupplierTransactionRepositoryFacade combines all supplier transaction repository interfaces
type SupplierTransactionRepositoryFacade interface {
	SupplierTransactionReader
	SupplierTransactionWriter
}
