package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID          string          `json:"saleID"`
	Total           decimal.Decimal `json:"total"`
	TotalLocal      decimal.Decimal `json:"totalLocal"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PaymentMethodID string          `json:"paymentMethodId"`
	DebtID          *string         `json:"debtID,omitempty"`
	SoldAt          time.Time       `json:"soldAt"`
}

// ToSaleResponse converts a domain.Sale to a SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:          s.SaleID,
		Total:           s.Total,
		TotalLocal:      s.TotalLocal,
		ExchangeRate:    s.ExchangeRate,
		PaymentMethodID: s.PaymentMethodID,
		DebtID:          s.DebtID,
		SoldAt:          s.SoldAt,
	}
}

// PaymentResponse is returned by the PAY action.
type PaymentResponse struct {
	Debt          DebtResponse        `json:"debt"`
	Payment       DebtPaymentResponse `json:"payment"`
	Sale          *SaleResponse       `json:"sale,omitempty"`
	Expense       *ExpenseResponse    `json:"expense,omitempty"`
	RateFromCache bool                `json:"rateFromCache"`
	RateFallback  bool                `json:"rateFallback"`
}

// ToPaymentResponse converts a domain.PaymentResult to a PaymentResponse DTO
func ToPaymentResponse(r *domain.PaymentResult) PaymentResponse {
	resp := PaymentResponse{
		Debt:          ToDebtResponse(&r.Debt),
		Payment:       ToDebtPaymentResponse(&r.Payment),
		RateFromCache: r.RateFromCache,
		RateFallback:  r.RateFallback,
	}
	if r.Sale != nil {
		sale := ToSaleResponse(r.Sale)
		resp.Sale = &sale
	}
	if r.Expense != nil {
		expense := ToExpenseResponse(r.Expense)
		resp.Expense = &expense
	}
	return resp
}
