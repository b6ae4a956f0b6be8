package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// fakeTx is an opaque transaction handle handed out by MockTxManager.
type fakeTx struct {
	pgx.Tx
	id int
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error) {
	args := m.Called(ctx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtPayment), args.Error(1)
}

func (m *MockDebtRepository) LockCounterpartyInTx(ctx context.Context, tx pgx.Tx, tenantID string, direction domain.DebtDirection, normalizedName string) error {
	args := m.Called(ctx, tx, tenantID, direction, normalizedName)
	return args.Error(0)
}

func (m *MockDebtRepository) FindOpenReceivableForUpdate(ctx context.Context, tx pgx.Tx, tenantID, normalizedName string) (*domain.Debt, error) {
	args := m.Called(ctx, tx, tenantID, normalizedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindDebtByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, tx, tenantID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	args := m.Called(ctx, tx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	args := m.Called(ctx, tx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) SaveDebtPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DebtPayment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebtInTx(ctx context.Context, tx pgx.Tx, tenantID, debtID string) error {
	args := m.Called(ctx, tx, tenantID, debtID)
	return args.Error(0)
}

// --- Mock InventoryAdjuster ---
type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) DecrementStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, productID, quantity)
	return args.Error(0)
}

func (m *MockInventory) RestoreStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, productID, quantity)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock RateCache ---
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockRateCache) Set(ctx context.Context, from, to string, rate decimal.Decimal) error {
	args := m.Called(ctx, from, to, rate)
	return args.Error(0)
}

func (m *MockRateCache) Delete(ctx context.Context, from, to string) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

// --- Mock TenantReader ---
type MockTenantReader struct {
	mock.Mock
}

func (m *MockTenantReader) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantReader) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockTenantRepository) LockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ShareLockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) error {
	args := m.Called(ctx, tx, tenantID)
	return args.Error(0)
}

func (m *MockTenantRepository) ListPaymentMethodsInTx(ctx context.Context, tx pgx.Tx, tenantID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, tx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockTenantRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

// --- Mock CashClosureRepository ---
type MockClosureRepository struct {
	mock.Mock
}

func (m *MockClosureRepository) FindLatestClosure(ctx context.Context, tenantID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

func (m *MockClosureRepository) SumWindow(ctx context.Context, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	args := m.Called(ctx, tenantID, start, end)
	return args.Get(0).(domain.WindowTotals), args.Error(1)
}

func (m *MockClosureRepository) FindClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, tenantID, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

func (m *MockClosureRepository) ListClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.CashClosure, int, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CashClosure), args.Int(1), args.Error(2)
}

func (m *MockClosureRepository) FindLatestClosureInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.CashClosure, error) {
	args := m.Called(ctx, tx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashClosure), args.Error(1)
}

func (m *MockClosureRepository) SumWindowInTx(ctx context.Context, tx pgx.Tx, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	args := m.Called(ctx, tx, tenantID, start, end)
	return args.Get(0).(domain.WindowTotals), args.Error(1)
}

func (m *MockClosureRepository) SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error {
	args := m.Called(ctx, tx, closure)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}
