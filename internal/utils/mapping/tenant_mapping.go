package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:      m.TenantID,
		Name:          m.Name,
		BaseCurrency:  m.BaseCurrency,
		LocalCurrency: m.LocalCurrency,
		CreatedAt:     utc(m.CreatedAt),
	}
}

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		MethodID: d.MethodID,
		TenantID: d.TenantID,
		Name:     d.Name,
		IsCash:   d.IsCash,
		Position: d.Position,
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		MethodID: m.MethodID,
		TenantID: m.TenantID,
		Name:     m.Name,
		IsCash:   m.IsCash,
		Position: m.Position,
	}
}
