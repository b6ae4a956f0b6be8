package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CreatePaymentMethodRequest defines the data needed to configure a tender.
type CreatePaymentMethodRequest struct {
	Name   string `json:"name" binding:"required,max=64"`
	IsCash bool   `json:"isCash"`
}

// PaymentMethodResponse mirrors domain.PaymentMethod.
type PaymentMethodResponse struct {
	MethodID string `json:"methodID"`
	Name     string `json:"name"`
	IsCash   bool   `json:"isCash"`
	Position int    `json:"position"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		MethodID: m.MethodID,
		Name:     m.Name,
		IsCash:   m.IsCash,
		Position: m.Position,
	}
}

// ToListPaymentMethodResponse converts a slice of domain.PaymentMethod
func ToListPaymentMethodResponse(methods []domain.PaymentMethod) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		res[i] = ToPaymentMethodResponse(&methods[i])
	}
	return res
}

// TenantResponse mirrors domain.Tenant.
type TenantResponse struct {
	TenantID      string    `json:"tenantID"`
	Name          string    `json:"name"`
	BaseCurrency  string    `json:"baseCurrency"`
	LocalCurrency string    `json:"localCurrency"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToTenantResponse converts a domain.Tenant
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		BaseCurrency:  t.BaseCurrency,
		LocalCurrency: t.LocalCurrency,
		CreatedAt:     t.CreatedAt,
	}
}
