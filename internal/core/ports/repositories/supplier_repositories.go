package repositories

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a specific supplier scoped to an account.
	FindSupplierByID(ctx context.Context, accountID, supplierID string) (*domain.Supplier, error)

	// FindSuppliersByAccount retrieves all suppliers for an account,
	// ordered by number ascending.
	FindSuppliersByAccount(ctx context.Context, accountID string) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// MarkSupplierDeleted marks a supplier as deleted (soft delete).
	MarkSupplierDeleted(ctx context.Context, accountID, supplierID string, deletedAt time.Time, deletedBy string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
