package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale maps the sales table.
type Sale struct {
	SaleID          string          `db:"sale_id"`
	TenantID        string          `db:"tenant_id"`
	Total           decimal.Decimal `db:"total"`
	TotalLocal      decimal.Decimal `db:"total_local"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	PaymentMethodID string          `db:"payment_method_id"`
	DebtID          *string         `db:"debt_id"` // Unique when not null
	SoldAt          time.Time       `db:"sold_at"`
	CreatedBy       string          `db:"created_by"`
}

// Expense maps the expenses table.
type Expense struct {
	ExpenseID       string          `db:"expense_id"`
	TenantID        string          `db:"tenant_id"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethodID *string         `db:"payment_method_id"`
	DebtID          *string         `db:"debt_id"`
	SpentAt         time.Time       `db:"spent_at"`
	CreatedBy       string          `db:"created_by"`
}
