package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is cash leaving the business.
type Expense struct {
	ExpenseID       string
	TenantID        string
	Description     string
	Amount          decimal.Decimal
	PaymentMethodID *string
	DebtID          *string
	SpentAt         time.Time
	CreatedBy       string
}
