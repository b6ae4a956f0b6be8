package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type expenseService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tenantRepo  portsrepo.TenantRepositoryFacade
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// NewExpenseService creates the service recording direct drawer withdrawals.
func NewExpenseService(
	txManager portsrepo.TransactionManager,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	tenantRepo portsrepo.TenantRepositoryFacade,
	options ...ServiceOption,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: newBaseService(options...),
		txManager:   txManager,
		expenseRepo: expenseRepo,
		tenantRepo:  tenantRepo,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, tenantID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return nil, fmt.Errorf("%w: expense amount has more than %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.tenantRepo.ShareLockTenantInTx(ctx, tx, tenantID); err != nil {
		s.logUnexpected(ctx, err, "Failed to lock tenant for expense", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if req.PaymentMethodID != nil {
		methods, err := s.tenantRepo.ListPaymentMethodsInTx(ctx, tx, tenantID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list payment methods", slog.String("tenant_id", tenantID))
			return nil, err
		}
		if domain.FindPaymentMethod(methods, *req.PaymentMethodID) == nil {
			return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, *req.PaymentMethodID)
		}
	}

	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		TenantID:        tenantID,
		Description:     description,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		SpentAt:         s.Now(),
		CreatedBy:       userID,
	}
	if err := s.expenseRepo.SaveExpenseInTx(ctx, tx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, tenantID string, params dto.ListExpensesParams) ([]domain.Expense, error) {
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return nil, fmt.Errorf("%w: 'to' cannot be before 'from'", apperrors.ErrValidation)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, tenantID, params.From, params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return expenses, nil
}
