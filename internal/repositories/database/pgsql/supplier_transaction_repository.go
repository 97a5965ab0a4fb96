package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
	"github.com/kasa-app/kasa_backend/internal/utils/pagination"
)

type PgxSupplierTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxSupplierTransactionRepository(db *pgxpool.Pool) portsrepo.SupplierTransactionRepositoryFacade {
	return &PgxSupplierTransactionRepository{db: db}
}

// Ensure PgxSupplierTransactionRepository implements portsrepo.SupplierTransactionRepositoryFacade
var _ portsrepo.SupplierTransactionRepositoryFacade = (*PgxSupplierTransactionRepository)(nil)

const selectSupplierTransactionFields = `
	transaction_id, account_id, supplier_id, date, type, amount,
	vat_rate, description, invoice_number, created_at
`

func scanSupplierTransaction(row pgx.Row) (*models.SupplierTransaction, error) {
	var m models.SupplierTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.SupplierID,
		&m.Date,
		&m.Type,
		&m.Amount,
		&m.VatRate,
		&m.Description,
		&m.InvoiceNumber,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSupplierTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.SupplierTransaction) error {
	m := mapping.ToModelSupplierTransaction(transaction)
	query := `
		INSERT INTO supplier_transactions (transaction_id, account_id, supplier_id, date, type, amount, vat_rate, description, invoice_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.SupplierID,
		m.Date,
		m.Type,
		m.Amount,
		m.VatRate,
		m.Description,
		m.InvoiceNumber,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier transaction: %w", err)
	}
	return nil
}

func (r *PgxSupplierTransactionRepository) FindTransactionByID(ctx context.Context, accountID, transactionID string) (*domain.SupplierTransaction, error) {
	query := `
		SELECT ` + selectSupplierTransactionFields + `
		FROM supplier_transactions
		WHERE transaction_id = $1 AND account_id = $2;
	`
	m, err := scanSupplierTransaction(r.db.QueryRow(ctx, query, transactionID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier transaction by ID %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainSupplierTransaction(*m)
	return &txn, nil
}

// FindTransactionsBySupplier returns the supplier's full history. The
// ledger builder needs every entry to compute running balances, so no
// date filtering happens here.
func (r *PgxSupplierTransactionRepository) FindTransactionsBySupplier(ctx context.Context, accountID, supplierID string) ([]domain.SupplierTransaction, error) {
	query := `
		SELECT ` + selectSupplierTransactionFields + `
		FROM supplier_transactions
		WHERE account_id = $1 AND supplier_id = $2
		ORDER BY date ASC, created_at ASC, transaction_id ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.SupplierTransaction{}
	for rows.Next() {
		m, err := scanSupplierTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier transaction rows: %w", rows.Err())
	}
	return mapping.ToDomainSupplierTransactionSlice(ms), nil
}

// FindTransactionsBySupplierPaginated pages through a supplier's entries
// newest first using a (date, created_at) keyset cursor.
func (r *PgxSupplierTransactionRepository) FindTransactionsBySupplierPaginated(ctx context.Context, accountID, supplierID string, limit int, nextToken *string) ([]domain.SupplierTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{accountID, supplierID}
	query := `
		SELECT ` + selectSupplierTransactionFields + `
		FROM supplier_transactions
		WHERE account_id = $1 AND supplier_id = $2
	`
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, cursorDate, cursorCreatedAt)
	}
	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query supplier transactions page: %w", err)
	}
	defer rows.Close()

	ms := []models.SupplierTransaction{}
	for rows.Next() {
		m, err := scanSupplierTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan supplier transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating supplier transaction rows: %w", rows.Err())
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainSupplierTransactionSlice(ms), token, nil
}

func (r *PgxSupplierTransactionRepository) DeleteTransaction(ctx context.Context, accountID, transactionID string) error {
	query := `DELETE FROM supplier_transactions WHERE transaction_id = $1 AND account_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, transactionID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
