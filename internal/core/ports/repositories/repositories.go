package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo             AccountRepositoryFacade
	SettingsRepo            SettingsRepositoryFacade
	RevenueRepo             RevenueRepositoryFacade
	ExpenseRepo             ExpenseRepositoryFacade
	SupplierRepo            SupplierRepositoryFacade
	SupplierTransactionRepo SupplierTransactionRepositoryFacade
	APITokenRepo            APITokenRepository
}
