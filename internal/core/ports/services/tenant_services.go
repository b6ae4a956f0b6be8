package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// TenantSvcFacade exposes tenant data.
type TenantSvcFacade interface {
	GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// PaymentMethodSvcFacade manages a tenant's tenders.
type PaymentMethodSvcFacade interface {
	// ListPaymentMethods returns methods in their configured order.
	ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)

	// CreatePaymentMethod appends a method after the existing ones.
	CreatePaymentMethod(ctx context.Context, tenantID string, req dto.CreatePaymentMethodRequest, userID string) (*domain.PaymentMethod, error)
}
