package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtService) GetDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error) {
	args := m.Called(ctx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtPayment), args.Error(1)
}

func (m *MockDebtService) CreateDebt(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, bool, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Debt), args.Bool(1), args.Error(2)
}

func (m *MockDebtService) CreateOrMergeReceivable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, bool, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Debt), args.Bool(1), args.Error(2)
}

func (m *MockDebtService) CreatePayable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) EditDebt(ctx context.Context, tenantID, debtID string, req dto.EditDebtRequest, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, tenantID, debtID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) DeleteDebt(ctx context.Context, tenantID, debtID string, restoreStock bool, userID string) error {
	args := m.Called(ctx, tenantID, debtID, restoreStock, userID)
	return args.Error(0)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ApplyPayment(ctx context.Context, tenantID, debtID string, req dto.ApplyPaymentRequest, userID string) (*domain.PaymentResult, error) {
	args := m.Called(ctx, tenantID, debtID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock CashClosureService ---
type MockCashClosureService struct {
	mock.Mock
}

func (m *MockCashClosureService) GetOpenShiftSummary(ctx context.Context, tenantID string) (*domain.ShiftSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftSummary), args.Error(1)
}

func (m *MockCashClosureService) ListClosures(ctx context.Context, tenantID string, params dto.ListClosuresParams) (*dto.ListClosuresResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListClosuresResponse), args.Error(1)
}

func (m *MockCashClosureService) GetClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, tenantID, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

func (m *MockCashClosureService) CloseShift(ctx context.Context, tenantID string, req dto.CloseShiftRequest, userID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

var _ portssvc.CashClosureSvcFacade = (*MockCashClosureService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, tenantID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, tenantID string, params dto.ListExpensesParams) ([]domain.Expense, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock TenantService (tenant and payment methods) ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockTenantService) CreatePaymentMethod(ctx context.Context, tenantID string, req dto.CreatePaymentMethodRequest, userID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

var (
	_ portssvc.TenantSvcFacade        = (*MockTenantService)(nil)
	_ portssvc.PaymentMethodSvcFacade = (*MockTenantService)(nil)
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetCurrentRate(ctx context.Context, tenantID string) (*domain.RateQuote, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateQuote), args.Error(1)
}

func (m *MockExchangeRateService) RecordExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
