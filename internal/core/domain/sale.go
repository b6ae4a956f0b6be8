package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is completed revenue. Sales synthesized from a receivable carry its DebtID.
type Sale struct {
	SaleID          string
	TenantID        string
	Total           decimal.Decimal // base currency
	TotalLocal      decimal.Decimal
	ExchangeRate    decimal.Decimal
	PaymentMethodID string
	DebtID          *string
	SoldAt          time.Time
	CreatedBy       string
}

// DebtPayment records a single abono against a debt.
type DebtPayment struct {
	PaymentID          string
	DebtID             string
	TenantID           string
	Amount             decimal.Decimal
	PaymentMethodID    *string
	DrawFromCashDrawer bool
	PaidAt             time.Time
	CreatedBy          string
}

// PaymentResult is everything ApplyPayment produced in its unit of work.
type PaymentResult struct {
	Debt          Debt
	Payment       DebtPayment
	Sale          *Sale
	Expense       *Expense
	RateFromCache bool
	RateFallback  bool
}
