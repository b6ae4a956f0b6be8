package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	// FindSaleByDebtID returns the sale synthesized from a debt; apperrors.ErrNotFound when none.
	FindSaleByDebtID(ctx context.Context, tenantID, debtID string) (*domain.Sale, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveSaleInTx inserts a sale. A second sale for the same debt is apperrors.ErrConflict.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	// ListExpenses returns expenses spent in (from, to]; nil bounds are open.
	ListExpenses(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
