package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant is an isolated business. CreatedAt opens its first reconciliation window.
type Tenant struct {
	TenantID      string
	Name          string
	BaseCurrency  string
	LocalCurrency string
	CreatedAt     time.Time
}

// PaymentMethod is a tender configured by a tenant.
type PaymentMethod struct {
	MethodID string
	TenantID string
	Name     string
	IsCash   bool
	Position int
}

// FirstPaymentMethod returns the first configured method; methods must be ordered by position.
func FirstPaymentMethod(methods []PaymentMethod) *PaymentMethod {
	if len(methods) == 0 {
		return nil
	}
	return &methods[0]
}

// CashMethod returns the first cash method, if any.
func CashMethod(methods []PaymentMethod) *PaymentMethod {
	for i := range methods {
		if methods[i].IsCash {
			return &methods[i]
		}
	}
	return nil
}

// FindPaymentMethod returns the method with id, if present.
func FindPaymentMethod(methods []PaymentMethod, id string) *PaymentMethod {
	for i := range methods {
		if methods[i].MethodID == id {
			return &methods[i]
		}
	}
	return nil
}

// Product is the stock-bearing catalog row that receivable line items may reference.
type Product struct {
	ProductID  string
	TenantID   string
	Name       string
	Stock      decimal.Decimal
	IsWeighted bool
}
