package repositories

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense entry scoped to an account.
	FindExpenseByID(ctx context.Context, accountID, expenseID string) (*domain.Expense, error)

	// FindExpensesByDateRange retrieves expenses with a date in [from, to],
	// ordered by date ascending.
	FindExpensesByDateRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error)

	// FindExpensesBefore retrieves expenses dated strictly before the given
	// day. Used for opening-balance reconstruction.
	FindExpensesBefore(ctx context.Context, accountID string, before time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense entry.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an existing expense entry.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense entry scoped to an account.
	DeleteExpense(ctx context.Context, accountID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
