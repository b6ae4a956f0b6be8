package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// TenantReader defines read operations for tenants and their payment methods
type TenantReader interface {
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListPaymentMethods returns methods ordered by position, then name.
	ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)
}

// TenantWriter defines write and locking operations for tenants
type TenantWriter interface {
	// LockTenantInTx row-locks the tenant, serializing shift closes.
	LockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.Tenant, error)

	// ShareLockTenantInTx takes the tenant row in share mode. Writers of sales and expenses
	// hold it so that a shift close waits for them and never sums a window they still land in.
	ShareLockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) error

	ListPaymentMethodsInTx(ctx context.Context, tx pgx.Tx, tenantID string) ([]domain.PaymentMethod, error)

	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
