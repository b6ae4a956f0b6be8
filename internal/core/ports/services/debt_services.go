package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// DebtReaderSvc defines read operations for the debt ledger
type DebtReaderSvc interface {
	// ListDebts retrieves the tenant's debts, most recent first.
	ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error)

	// GetDebtByID retrieves a single debt scoped to the tenant.
	GetDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error)

	// ListDebtPayments retrieves the abonos applied to a debt.
	ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error)
}

// DebtWriterSvc defines write operations for the debt ledger
type DebtWriterSvc interface {
	// CreateDebt dispatches on direction; merged is true when an open receivable absorbed the request.
	CreateDebt(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (debt *domain.Debt, merged bool, err error)

	// CreateOrMergeReceivable folds the purchase into the counterparty's open receivable or opens a new one.
	CreateOrMergeReceivable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, bool, error)

	// CreatePayable always records a new supplier debt.
	CreatePayable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error)

	// EditDebt applies a clerical correction without settlement side effects.
	EditDebt(ctx context.Context, tenantID, debtID string, req dto.EditDebtRequest, userID string) (*domain.Debt, error)

	// DeleteDebt removes a debt, optionally restoring stock for a pending receivable.
	DeleteDebt(ctx context.Context, tenantID, debtID string, restoreStock bool, userID string) error
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
