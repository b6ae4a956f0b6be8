package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record cash leaving the drawer.
type CreateExpenseRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"gt=0"`
	PaymentMethodID *string         `json:"paymentMethodId"`
}

// ListExpensesParams bounds the listing to (from, to].
type ListExpensesParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID       string          `json:"expenseID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID *string         `json:"paymentMethodId,omitempty"`
	DebtID          *string         `json:"debtID,omitempty"`
	SpentAt         time.Time       `json:"spentAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		Description:     e.Description,
		Amount:          e.Amount,
		PaymentMethodID: e.PaymentMethodID,
		DebtID:          e.DebtID,
		SpentAt:         e.SpentAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
