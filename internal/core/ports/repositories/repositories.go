package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager        TransactionManager
	DebtRepo         DebtRepositoryFacade
	SaleRepo         SaleRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	ClosureRepo      CashClosureRepositoryFacade
	TenantRepo       TenantRepositoryFacade
	InventoryRepo    InventoryAdjuster
	ExchangeRateRepo ExchangeRateRepositoryFacade
	RateCache        RateCache
}
