package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// LineItemRequest is a product snapshot sent with a credit purchase.
type LineItemRequest struct {
	ProductID  *string         `json:"productId"` // Optional catalog reference; drives stock
	Name       string          `json:"name" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"gt=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	IsWeighted bool            `json:"isWeighted"`
}

// CreateDebtRequest defines the data needed to record a receivable or a payable.
// Amount may be omitted for receivables with line items; it then defaults to their sum.
type CreateDebtRequest struct {
	Direction        domain.DebtDirection `json:"direction" binding:"required,oneof=RECEIVABLE PAYABLE"`
	CounterpartyName string               `json:"counterpartyName" binding:"required"`
	Phone            *string              `json:"phone"`
	Note             string               `json:"note"`
	LineItems        []LineItemRequest    `json:"lineItems" binding:"dive"`
	Amount           decimal.Decimal      `json:"amount" binding:"gte=0"`
}

// EditDebtRequest defines a clerical correction. Nil fields are left unchanged.
type EditDebtRequest struct {
	CounterpartyName *string           `json:"counterpartyName"`
	Phone            *string           `json:"phone"`
	Note             *string           `json:"note"`
	TotalAmount      *decimal.Decimal  `json:"totalAmount"`
	LineItems        []LineItemRequest `json:"lineItems" binding:"omitempty,dive"` // Replaces the list when present
}

// ApplyPaymentRequest defines an abono against a debt.
type ApplyPaymentRequest struct {
	PaymentAmount      decimal.Decimal `json:"paymentAmount"`
	PaymentMethodID    *string         `json:"paymentMethodId"`
	DrawFromCashDrawer bool            `json:"drawFromCashDrawer"`
}

// Debt update actions.
const (
	ActionEdit = "EDIT"
	ActionPay  = "PAY"
)

// UpdateDebtRequest is the PUT body: the action selects which embedded field set applies.
type UpdateDebtRequest struct {
	ID     string `json:"id"`
	Action string `json:"action" binding:"required,oneof=EDIT PAY"`
	EditDebtRequest
	ApplyPaymentRequest
}

// ListDebtsParams defines query parameters for listing debts.
type ListDebtsParams struct {
	Direction string `form:"direction" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING SETTLED"`
}

// Filter converts the query parameters to a repository filter.
func (p ListDebtsParams) Filter() domain.DebtFilter {
	var f domain.DebtFilter
	if p.Direction != "" {
		d := domain.DebtDirection(p.Direction)
		f.Direction = &d
	}
	if p.Status != "" {
		s := domain.DebtStatus(p.Status)
		f.Status = &s
	}
	return f
}

// LineItemResponse mirrors domain.DebtLineItem.
type LineItemResponse struct {
	ProductID  *string         `json:"productId,omitempty"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	IsWeighted bool            `json:"isWeighted"`
	AddedAt    time.Time       `json:"addedAt"`
}

// NoteResponse is a dated note entry.
type NoteResponse struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID           string               `json:"debtID"`
	Direction        domain.DebtDirection `json:"direction"`
	CounterpartyName string               `json:"counterpartyName"`
	Phone            *string              `json:"phone,omitempty"`
	Note             string               `json:"note"`
	NoteLog          []NoteResponse       `json:"noteLog"`
	LineItems        []LineItemResponse   `json:"lineItems"`
	TotalAmount      decimal.Decimal      `json:"totalAmount"`
	AmountPaid       decimal.Decimal      `json:"amountPaid"`
	Outstanding      decimal.Decimal      `json:"outstanding"`
	Status           domain.DebtStatus    `json:"status"`
	SettledAt        *time.Time           `json:"settledAt,omitempty"`
	Merged           bool                 `json:"merged,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy    string               `json:"lastUpdatedBy"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO
func ToDebtResponse(d *domain.Debt) DebtResponse {
	items := make([]LineItemResponse, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = LineItemResponse{
			ProductID:  li.ProductID,
			Name:       li.Name,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice,
			Subtotal:   li.Subtotal(),
			IsWeighted: li.IsWeighted,
			AddedAt:    li.AddedAt,
		}
	}
	notes := make([]NoteResponse, len(d.NoteLog))
	for i, n := range d.NoteLog {
		notes[i] = NoteResponse{At: n.At, Text: n.Text}
	}
	return DebtResponse{
		DebtID:           d.DebtID,
		Direction:        d.Direction,
		CounterpartyName: d.CounterpartyName,
		Phone:            d.Phone,
		Note:             d.Note,
		NoteLog:          notes,
		LineItems:        items,
		TotalAmount:      d.TotalAmount,
		AmountPaid:       d.AmountPaid,
		Outstanding:      d.Outstanding(),
		Status:           d.Status,
		SettledAt:        d.SettledAt,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
		LastUpdatedAt:    d.LastUpdatedAt,
		LastUpdatedBy:    d.LastUpdatedBy,
	}
}

// ToListDebtResponse converts a slice of domain.Debt to a slice of DebtResponse DTOs
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}

// DebtPaymentResponse defines the data returned for one abono.
type DebtPaymentResponse struct {
	PaymentID          string          `json:"paymentID"`
	DebtID             string          `json:"debtID"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMethodID    *string         `json:"paymentMethodId,omitempty"`
	DrawFromCashDrawer bool            `json:"drawFromCashDrawer"`
	PaidAt             time.Time       `json:"paidAt"`
	CreatedBy          string          `json:"createdBy"`
}

// ToDebtPaymentResponse converts a domain.DebtPayment to a DebtPaymentResponse DTO
func ToDebtPaymentResponse(p *domain.DebtPayment) DebtPaymentResponse {
	return DebtPaymentResponse{
		PaymentID:          p.PaymentID,
		DebtID:             p.DebtID,
		Amount:             p.Amount,
		PaymentMethodID:    p.PaymentMethodID,
		DrawFromCashDrawer: p.DrawFromCashDrawer,
		PaidAt:             p.PaidAt,
		CreatedBy:          p.CreatedBy,
	}
}

// ToListDebtPaymentResponse converts a slice of domain.DebtPayment
func ToListDebtPaymentResponse(payments []domain.DebtPayment) []DebtPaymentResponse {
	res := make([]DebtPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToDebtPaymentResponse(&payments[i])
	}
	return res
}
