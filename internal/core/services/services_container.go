package services

import (
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first since most services resolve rates through it
	container.Settings = NewSettingsService(repos.SettingsRepo)

	container.Account = NewAccountService(repos.AccountRepo, repos.SettingsRepo)
	container.Revenue = NewRevenueService(repos.RevenueRepo, container.Settings)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.SupplierRepo, container.Settings, cfg.LegacyVatPercent)
	container.Supplier = NewSupplierService(repos.SupplierRepo, repos.SupplierTransactionRepo, container.Settings, cfg.LegacyVatPercent)
	container.Ledger = NewLedgerService(repos.RevenueRepo, repos.ExpenseRepo, container.Settings)
	container.Export = NewExportService(repos.RevenueRepo, repos.ExpenseRepo, repos.SupplierRepo, repos.SupplierTransactionRepo)

	container.TokenService = NewTokenService(cfg, container.Account)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.Account)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
	_ portssvc.RevenueSvcFacade  = (*revenueService)(nil)
	_ portssvc.ExpenseSvcFacade  = (*expenseService)(nil)
	_ portssvc.SupplierSvcFacade = (*supplierService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.ExportSvcFacade   = (*exportService)(nil)
	_ portssvc.APITokenSvc       = (*apiTokenService)(nil)
)
