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

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const selectExpenseFields = `
	expense_id, account_id, date, gross_amount, contributions_amount,
	net_amount, vat_percent, vat_amount, type, supplier_id, paid_now,
	note, receipt_url,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.AccountID,
		&m.Date,
		&m.GrossAmount,
		&m.ContributionsAmount,
		&m.NetAmount,
		&m.VatPercent,
		&m.VatAmount,
		&m.Type,
		&m.SupplierID,
		&m.PaidNow,
		&m.Note,
		&m.ReceiptURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxExpenseRepository) collectExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	defer rows.Close()
	ms := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, account_id, date, gross_amount, contributions_amount, net_amount, vat_percent, vat_amount, type, supplier_id, paid_now, note, receipt_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.AccountID,
		m.Date,
		m.GrossAmount,
		m.ContributionsAmount,
		m.NetAmount,
		m.VatPercent,
		m.VatAmount,
		m.Type,
		m.SupplierID,
		m.PaidNow,
		m.Note,
		m.ReceiptURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, accountID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + selectExpenseFields + `
		FROM expenses
		WHERE expense_id = $1 AND account_id = $2;
	`
	m, err := scanExpense(r.db.QueryRow(ctx, query, expenseID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(*m)
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpensesByDateRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error) {
	query := `
		SELECT ` + selectExpenseFields + `
		FROM expenses
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	return r.collectExpenses(rows)
}

func (r *PgxExpenseRepository) FindExpensesBefore(ctx context.Context, accountID string, before time.Time) ([]domain.Expense, error) {
	query := `
		SELECT ` + selectExpenseFields + `
		FROM expenses
		WHERE account_id = $1 AND date < $2
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses before %s: %w", before.Format("2006-01-02"), err)
	}
	return r.collectExpenses(rows)
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET date = $1, gross_amount = $2, contributions_amount = $3, net_amount = $4, vat_percent = $5, vat_amount = $6, type = $7, supplier_id = $8, paid_now = $9, note = $10, receipt_url = $11, last_updated_at = $12, last_updated_by = $13
		WHERE expense_id = $14 AND account_id = $15;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Date,
		m.GrossAmount,
		m.ContributionsAmount,
		m.NetAmount,
		m.VatPercent,
		m.VatAmount,
		m.Type,
		m.SupplierID,
		m.PaidNow,
		m.Note,
		m.ReceiptURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, accountID, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1 AND account_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, expenseID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
