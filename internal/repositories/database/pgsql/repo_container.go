package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:             newPgxAccountRepository(dbPool),
		SettingsRepo:            newPgxSettingsRepository(dbPool),
		RevenueRepo:             newPgxRevenueRepository(dbPool),
		ExpenseRepo:             newPgxExpenseRepository(dbPool),
		SupplierRepo:            newPgxSupplierRepository(dbPool),
		SupplierTransactionRepo: newPgxSupplierTransactionRepository(dbPool),
		APITokenRepo:            newPgxAPITokenRepository(dbPool),
	}
}
