package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
)

// DebtDirection tells who owes whom.
type DebtDirection string

const (
	Receivable DebtDirection = "RECEIVABLE" // customer owes the business
	Payable    DebtDirection = "PAYABLE"    // business owes a supplier
)

// IsValid reports whether d is a known direction.
func (d DebtDirection) IsValid() bool {
	return d == Receivable || d == Payable
}

// DebtStatus is derived from the paid amount; SETTLED is terminal.
type DebtStatus string

const (
	DebtPending DebtStatus = "PENDING"
	DebtSettled DebtStatus = "SETTLED"
)

// IsValid reports whether s is a known status.
func (s DebtStatus) IsValid() bool {
	return s == DebtPending || s == DebtSettled
}

// SettlementTolerance absorbs rounding residue when comparing paid and total amounts.
var SettlementTolerance = decimal.New(1, -2)

// DebtLineItem is a product snapshot attached to a receivable.
type DebtLineItem struct {
	ProductID  *string         `json:"productId,omitempty"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	IsWeighted bool            `json:"isWeighted"`
	AddedAt    time.Time       `json:"addedAt"`
}

// Subtotal returns quantity times unit price.
func (li DebtLineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// DebtNote is one dated entry of a debt's note history.
type DebtNote struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Debt is an outstanding obligation between the tenant and a counterparty.
type Debt struct {
	DebtID           string
	TenantID         string
	Direction        DebtDirection
	CounterpartyName string
	Phone            *string
	Note             string
	NoteLog          []DebtNote
	LineItems        []DebtLineItem
	TotalAmount      decimal.Decimal
	AmountPaid       decimal.Decimal
	Status           DebtStatus
	SettledAt        *time.Time
	AuditFields
}

// DebtFilter narrows ListDebts; nil fields match everything.
type DebtFilter struct {
	Direction *DebtDirection
	Status    *DebtStatus
}

// NormalizeCounterparty is the match key used to find a pending receivable for merging.
func NormalizeCounterparty(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// LineItemsTotal sums the subtotals of items.
func LineItemsTotal(items []DebtLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsSettledAmount reports whether paid covers total within SettlementTolerance.
func IsSettledAmount(total, paid decimal.Decimal) bool {
	return total.Sub(paid).LessThanOrEqual(SettlementTolerance)
}

// Outstanding returns the remaining balance, never negative.
func (d *Debt) Outstanding() decimal.Decimal {
	rest := d.TotalAmount.Sub(d.AmountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// IsSettled reports whether the debt is in its terminal state.
func (d *Debt) IsSettled() bool {
	return d.Status == DebtSettled
}

// ApplyPayment moves amountPaid forward and reports whether the debt transitioned to SETTLED.
// The receiver is left untouched when an error is returned.
func (d *Debt) ApplyPayment(amount decimal.Decimal, now time.Time, userID string) (bool, error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if !FitsMoneyScale(amount) {
		return false, fmt.Errorf("%w: payment amount has more than %d decimal places", apperrors.ErrInvalidAmount, MoneyScale)
	}
	if d.IsSettled() {
		return false, fmt.Errorf("%w: debt %s", ErrDebtSettled, d.DebtID)
	}
	newPaid := d.AmountPaid.Add(amount)
	if newPaid.GreaterThan(d.TotalAmount.Add(SettlementTolerance)) {
		return false, fmt.Errorf("%w: payment of %s exceeds outstanding balance %s", apperrors.ErrInvalidAmount, amount.StringFixed(2), d.Outstanding().StringFixed(2))
	}

	d.AmountPaid = newPaid
	d.Touch(now, userID)
	settled := IsSettledAmount(d.TotalAmount, newPaid)
	if settled {
		d.Status = DebtSettled
		settledAt := now
		d.SettledAt = &settledAt
	}
	return settled, nil
}

// Merge folds an additional credit purchase into a pending receivable.
func (d *Debt) Merge(items []DebtLineItem, amount decimal.Decimal, note string, phone *string, now time.Time, userID string) {
	for _, item := range items {
		item.AddedAt = now
		d.LineItems = append(d.LineItems, item)
	}
	d.TotalAmount = d.TotalAmount.Add(amount)
	if note = strings.TrimSpace(note); note != "" {
		d.NoteLog = append(d.NoteLog, DebtNote{At: now, Text: note})
		if d.Note == "" {
			d.Note = note
		}
	}
	if phone != nil && strings.TrimSpace(*phone) != "" {
		p := strings.TrimSpace(*phone)
		d.Phone = &p
	}
	d.Touch(now, userID)
}

// RecomputeStatus derives status from the current totals. A debt that was never settled is
// marked SETTLED here without any settlement side effects.
func (d *Debt) RecomputeStatus(now time.Time) {
	if IsSettledAmount(d.TotalAmount, d.AmountPaid) {
		if d.Status != DebtSettled {
			d.Status = DebtSettled
			settledAt := now
			d.SettledAt = &settledAt
		}
		return
	}
	d.Status = DebtPending
	d.SettledAt = nil
}
