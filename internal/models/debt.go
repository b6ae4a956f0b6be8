package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the JSONB element of debts.line_items.
type LineItem struct {
	ProductID  *string         `json:"productId,omitempty"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	IsWeighted bool            `json:"isWeighted"`
	AddedAt    time.Time       `json:"addedAt"`
}

// NoteEntry is the JSONB element of debts.note_log.
type NoteEntry struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Debt maps the debts table.
type Debt struct {
	DebtID           string          `db:"debt_id"`
	TenantID         string          `db:"tenant_id"`
	Direction        string          `db:"direction"`
	CounterpartyName string          `db:"counterparty_name"`
	Phone            *string         `db:"phone"` // Nullable
	Note             string          `db:"note"`
	NoteLog          []NoteEntry     `db:"note_log"`   // JSONB
	LineItems        []LineItem      `db:"line_items"` // JSONB
	TotalAmount      decimal.Decimal `db:"total_amount"`
	AmountPaid       decimal.Decimal `db:"amount_paid"`
	Status           string          `db:"status"`
	SettledAt        *time.Time      `db:"settled_at"`
	AuditFields
}

// DebtPayment maps the debt_payments table.
type DebtPayment struct {
	PaymentID          string          `db:"payment_id"`
	DebtID             string          `db:"debt_id"`
	TenantID           string          `db:"tenant_id"`
	Amount             decimal.Decimal `db:"amount"`
	PaymentMethodID    *string         `db:"payment_method_id"`
	DrawFromCashDrawer bool            `db:"draw_from_cash_drawer"`
	PaidAt             time.Time       `db:"paid_at"`
	CreatedBy          string          `db:"created_by"`
}
