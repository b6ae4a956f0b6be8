package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/repositories/memory"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) CurrentRate(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

type PaymentServiceTestSuite struct {
	ledgerSuite
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) TestSequentialPayments_SettleOnce() {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable("Juan", "10"), userID)
	suite.Require().NoError(err)

	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("4"), userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtPending, res.Debt.Status)
	suite.Nil(res.Sale)
	suite.True(dec("6").Equal(res.Debt.Outstanding()))

	suite.clock.Advance(time.Minute)
	res, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("6"), userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtSettled, res.Debt.Status)
	suite.Require().NotNil(res.Debt.SettledAt)
	suite.Require().NotNil(res.Sale)
	suite.True(dec("10").Equal(res.Sale.Total))
	suite.True(dec("400").Equal(res.Sale.TotalLocal))
	suite.True(dec("40").Equal(res.Sale.ExchangeRate))
	suite.Equal(cashID, res.Sale.PaymentMethodID)
	suite.Require().NotNil(res.Sale.DebtID)
	suite.Equal(debt.DebtID, *res.Sale.DebtID)
	suite.False(res.RateFallback)

	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("1"), userID)
	suite.ErrorIs(err, domain.ErrDebtSettled)

	suite.Equal(1, countOf(suite.windowTotals().Sales))
}

func (suite *PaymentServiceTestSuite) TestSettlement_UsesExplicitMethod() {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable("Maria", "12.35"), userID)
	suite.Require().NoError(err)

	req := pay("12.35")
	req.PaymentMethodID = strPtr(cardID)
	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, req, userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(res.Sale)
	suite.Equal(cardID, res.Sale.PaymentMethodID)
	suite.True(dec("494").Equal(res.Sale.TotalLocal))
}

func (suite *PaymentServiceTestSuite) TestSettlement_WithinTolerance() {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable("Juan", "10"), userID)
	suite.Require().NoError(err)

	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("9.99"), userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtSettled, res.Debt.Status)
	suite.NotNil(res.Sale)
}

func (suite *PaymentServiceTestSuite) TestApplyPayment_Rejections() {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable("Juan", "10"), userID)
	suite.Require().NoError(err)

	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("0"), userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("-1"), userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("10.02"), userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	req := pay("1")
	req.PaymentMethodID = strPtr("other-cash")
	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, req, userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, "missing", pay("1"), userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// None of the rejected attempts moved the balance.
	current, err := suite.svc.Debt.GetDebtByID(suite.ctx, tenantID, debt.DebtID)
	suite.Require().NoError(err)
	suite.True(current.AmountPaid.IsZero())
	payments, err := suite.svc.Debt.ListDebtPayments(suite.ctx, tenantID, debt.DebtID)
	suite.Require().NoError(err)
	suite.Empty(payments)
}

func (suite *PaymentServiceTestSuite) TestPayable_DrawFromCashDrawerCreatesExpense() {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, payable("Supplier X", "100"), userID)
	suite.Require().NoError(err)

	req := pay("30")
	req.DrawFromCashDrawer = true
	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, req, userID)
	suite.Require().NoError(err)
	suite.Nil(res.Sale)
	suite.Require().NotNil(res.Expense)
	suite.Equal("Pago a Supplier X", res.Expense.Description)
	suite.True(dec("30").Equal(res.Expense.Amount))
	suite.Require().NotNil(res.Expense.PaymentMethodID)
	suite.Equal(cashID, *res.Expense.PaymentMethodID)

	// Settling a payable outside the drawer records neither a sale nor an expense.
	res, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("70"), userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtSettled, res.Debt.Status)
	suite.Nil(res.Sale)
	suite.Nil(res.Expense)

	totals := suite.windowTotals()
	suite.Empty(totals.Sales)
	suite.Equal(1, countOf(totals.Expenses))
}

func (suite *PaymentServiceTestSuite) TestSettlement_WithoutPaymentMethodRollsBack() {
	store := memory.New()
	store.SeedTenant(domain.Tenant{TenantID: "bare", BaseCurrency: "USD", LocalCurrency: "VES", CreatedAt: t0.Add(-time.Hour)})
	svc := services.NewServiceContainer(suite.cfg(), store.Provider(nil), services.WithClock(suite.clock.Now))

	debt, _, err := svc.Debt.CreateDebt(suite.ctx, "bare", receivable("Juan", "5"), userID)
	suite.Require().NoError(err)

	_, err = svc.Payment.ApplyPayment(suite.ctx, "bare", debt.DebtID, pay("5"), userID)
	suite.ErrorIs(err, domain.ErrPaymentMethodRequired)

	current, err := svc.Debt.GetDebtByID(suite.ctx, "bare", debt.DebtID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtPending, current.Status)
	suite.True(current.AmountPaid.IsZero())
}

func (suite *PaymentServiceTestSuite) TestSettlement_RateProviderDownUsesFallback() {
	rates := new(MockRateProvider)
	rates.On("CurrentRate", mock.Anything, "USD", "VES").
		Return(decimal.Zero, false, errors.Join(apperrors.ErrUpstreamUnavailable, errors.New("redis: connection refused"))).Once()

	repos := suite.store.Provider(nil)
	paymentSvc := services.NewPaymentService(
		repos.TxManager, repos.DebtRepo, repos.SaleRepo, repos.ExpenseRepo, repos.TenantRepo,
		rates, dec("36.5"), services.WithClock(suite.clock.Now),
	)

	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable("Juan", "2"), userID)
	suite.Require().NoError(err)
	res, err := paymentSvc.ApplyPayment(suite.ctx, tenantID, debt.DebtID, dto.ApplyPaymentRequest{PaymentAmount: dec("2")}, userID)
	suite.Require().NoError(err)
	suite.True(res.RateFallback)
	suite.Require().NotNil(res.Sale)
	suite.True(dec("36.5").Equal(res.Sale.ExchangeRate))
	suite.True(dec("73").Equal(res.Sale.TotalLocal))
	rates.AssertExpectations(suite.T())
}
