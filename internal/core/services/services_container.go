package services

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate provider is shared so the payment engine and the rate endpoint agree.
	rates := NewRateProvider(repos.ExchangeRateRepo, repos.RateCache, options...)

	tenants := NewTenantService(repos.TenantRepo, options...)
	container.Tenant = tenants
	container.PaymentMethod = tenants

	container.Debt = NewDebtService(repos.TxManager, repos.DebtRepo, repos.InventoryRepo, options...)
	container.Payment = NewPaymentService(
		repos.TxManager,
		repos.DebtRepo,
		repos.SaleRepo,
		repos.ExpenseRepo,
		repos.TenantRepo,
		rates,
		cfg.FallbackExchangeRate,
		options...,
	)
	container.CashClosure = NewCashClosureService(repos.TxManager, repos.ClosureRepo, repos.TenantRepo, options...)
	container.Expense = NewExpenseService(repos.TxManager, repos.ExpenseRepo, repos.TenantRepo, options...)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		repos.RateCache,
		repos.TenantRepo,
		rates,
		cfg.FallbackExchangeRate,
		options...,
	)

	return container
}
