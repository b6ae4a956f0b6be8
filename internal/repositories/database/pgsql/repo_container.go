package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Postgres repositories. The rate cache is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateCache portsrepo.RateCache) portsrepo.RepositoryProvider {
	debtRepo := newPgxDebtRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:        debtRepo,
		DebtRepo:         debtRepo,
		SaleRepo:         newPgxSaleRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		ClosureRepo:      newPgxCashClosureRepository(dbPool),
		TenantRepo:       newPgxTenantRepository(dbPool),
		InventoryRepo:    newPgxInventoryRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		RateCache:        rateCache,
	}
}
