package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// ExpenseSvcFacade records direct drawer withdrawals.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, tenantID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, tenantID string, params dto.ListExpensesParams) ([]domain.Expense, error)
}
