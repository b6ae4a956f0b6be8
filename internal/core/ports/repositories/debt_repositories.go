package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// DebtReader defines read operations for debt data. Every lookup is scoped to a tenant.
type DebtReader interface {
	// FindDebtByID retrieves a debt; apperrors.ErrNotFound when absent or owned by another tenant.
	FindDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error)

	// ListDebts returns the tenant's debts, most recent first.
	ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error)

	// ListDebtPayments returns the payment log of a debt, oldest first.
	ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error)
}

// DebtWriter defines the transactional write operations for debt data
type DebtWriter interface {
	// LockCounterpartyInTx serializes merges for one counterparty until tx ends.
	LockCounterpartyInTx(ctx context.Context, tx pgx.Tx, tenantID string, direction domain.DebtDirection, normalizedName string) error

	// FindOpenReceivableForUpdate returns the tenant's PENDING receivable matching the normalized
	// counterparty name, locked for update; apperrors.ErrNotFound when there is none.
	FindOpenReceivableForUpdate(ctx context.Context, tx pgx.Tx, tenantID, normalizedName string) (*domain.Debt, error)

	// FindDebtByIDForUpdate loads and row-locks a debt.
	FindDebtByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, debtID string) (*domain.Debt, error)

	// SaveDebtInTx inserts a new debt; a competing open receivable surfaces as apperrors.ErrConflict.
	SaveDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error

	// UpdateDebtInTx overwrites the mutable fields of a debt.
	UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error

	// SaveDebtPaymentInTx appends to the payment log.
	SaveDebtPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DebtPayment) error

	// DeleteDebtInTx removes a debt and its payment log.
	DeleteDebtInTx(ctx context.Context, tx pgx.Tx, tenantID, debtID string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
