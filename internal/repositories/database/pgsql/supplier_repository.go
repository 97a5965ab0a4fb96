package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
)

type PgxSupplierRepository struct {
	db *pgxpool.Pool
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{db: db}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const selectSupplierFields = `
	supplier_id, account_id, number, name, category, vat_percent, opening_balance,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanSupplier(row pgx.Row) (*models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.AccountID,
		&m.Number,
		&m.Name,
		&m.Category,
		&m.VatPercent,
		&m.OpeningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (supplier_id, account_id, number, name, category, vat_percent, opening_balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.SupplierID,
		m.AccountID,
		m.Number,
		m.Name,
		m.Category,
		m.VatPercent,
		m.OpeningBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, accountID, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT ` + selectSupplierFields + `
		FROM suppliers
		WHERE supplier_id = $1 AND account_id = $2 AND deleted_at IS NULL;
	`
	m, err := scanSupplier(r.db.QueryRow(ctx, query, supplierID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	supplier := mapping.ToDomainSupplier(*m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) FindSuppliersByAccount(ctx context.Context, accountID string) ([]domain.Supplier, error) {
	query := `
		SELECT ` + selectSupplierFields + `
		FROM suppliers
		WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY number ASC, name ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	ms := []models.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return mapping.ToDomainSupplierSlice(ms), nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET number = $1, name = $2, category = $3, vat_percent = $4, opening_balance = $5, last_updated_at = $6, last_updated_by = $7
		WHERE supplier_id = $8 AND account_id = $9 AND deleted_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Number,
		m.Name,
		m.Category,
		m.VatPercent,
		m.OpeningBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.SupplierID,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSupplierRepository) MarkSupplierDeleted(ctx context.Context, accountID, supplierID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE suppliers
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE supplier_id = $3 AND account_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, supplierID, accountID)
	if err != nil {
		return fmt.Errorf("failed to mark supplier as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
