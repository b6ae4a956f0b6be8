package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type CashClosureServiceTestSuite struct {
	ledgerSuite
}

func TestCashClosureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashClosureServiceTestSuite))
}

// sell settles a fresh receivable, which synthesizes one sale.
func (suite *CashClosureServiceTestSuite) sell(name, amount string, methodID *string) {
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, receivable(name, amount), userID)
	suite.Require().NoError(err)
	req := pay(amount)
	req.PaymentMethodID = methodID
	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, req, userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(res.Sale)
}

func (suite *CashClosureServiceTestSuite) spend(amount string) {
	_, err := suite.svc.Expense.CreateExpense(suite.ctx, tenantID, dto.CreateExpenseRequest{Description: "Hielo", Amount: dec(amount)}, userID)
	suite.Require().NoError(err)
}

func counts(kv ...string) dto.CloseShiftRequest {
	m := make(map[string]decimal.Decimal, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = dec(kv[i+1])
	}
	return dto.CloseShiftRequest{CountsByMethod: m}
}

func (suite *CashClosureServiceTestSuite) TestOpenShiftSummary() {
	suite.sell("Juan", "80", nil)
	suite.sell("Maria", "40", strPtr(cardID))
	suite.spend("20")
	suite.clock.Advance(time.Minute)

	summary, err := suite.svc.CashClosure.GetOpenShiftSummary(suite.ctx, tenantID)
	suite.Require().NoError(err)
	suite.True(dec("120").Equal(summary.SalesTotal))
	suite.True(dec("20").Equal(summary.ExpensesTotal))
	suite.True(dec("100").Equal(summary.ExpectedTotal))
	suite.True(dec("60").Equal(summary.ExpectedByMethod["Efectivo"]))
	suite.True(dec("40").Equal(summary.ExpectedByMethod["Tarjeta"]))
	suite.Equal(2, summary.SalesCount)
	suite.Equal(1, summary.ExpensesCount)
	suite.Equal(t0.Add(-time.Hour), summary.WindowStart)
	suite.Equal(t0.Add(time.Minute), summary.WindowEnd)
}

func (suite *CashClosureServiceTestSuite) TestCloseShift_Outcomes() {
	cases := []struct {
		count   string
		outcome domain.ClosureOutcome
		diff    string
	}{
		{"100.00", domain.OutcomeBalanced, "0"},
		{"97.50", domain.OutcomeShortage, "-2.50"},
		{"100.50", domain.OutcomeSurplus, "0.50"},
		{"99.995", domain.OutcomeBalanced, "-0.005"},
	}
	for i, tc := range cases {
		// Every case gets its own window holding 120 of sales and 20 of expenses.
		suite.clock.Advance(time.Hour)
		suite.sell(fmt.Sprintf("Cliente %d", i), "120", nil)
		suite.spend("20")

		closure, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts("Efectivo", tc.count), userID)
		suite.Require().NoError(err, tc.count)
		suite.True(dec("100").Equal(closure.SystemExpectedTotal), tc.count)
		suite.True(dec(tc.diff).Equal(closure.Difference), "%s: got %s", tc.count, closure.Difference)
		suite.Equal(tc.outcome, closure.Outcome, tc.count)
	}
}

func (suite *CashClosureServiceTestSuite) TestCloseShift_ShortageIsRecorded() {
	suite.sell("Juan", "120", nil)
	suite.spend("20")
	suite.clock.Advance(time.Minute)

	req := counts("Efectivo", "97.50")
	req.Notes = "faltante"
	closure, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, req, userID)
	suite.Require().NoError(err)
	suite.True(dec("120").Equal(closure.SalesTotal))
	suite.True(dec("20").Equal(closure.ExpensesTotal))
	suite.True(dec("100").Equal(closure.SystemExpectedTotal))
	suite.True(dec("97.50").Equal(closure.CountedTotal))
	suite.True(dec("-2.50").Equal(closure.Difference))
	suite.Equal(domain.OutcomeShortage, closure.Outcome)
	suite.Equal("faltante", closure.Notes)
	suite.Equal(t0.Add(time.Minute), closure.ClosedAt)

	stored, err := suite.svc.CashClosure.GetClosureByID(suite.ctx, tenantID, closure.ClosureID)
	suite.Require().NoError(err)
	suite.Equal(closure.ClosureID, stored.ClosureID)

	_, err = suite.svc.CashClosure.GetClosureByID(suite.ctx, otherID, closure.ClosureID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashClosureServiceTestSuite) TestConsecutiveWindowsNeverShareRecords() {
	suite.sell("Juan", "50", nil)
	first, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts("Efectivo", "50"), userID)
	suite.Require().NoError(err)
	suite.True(dec("50").Equal(first.SystemExpectedTotal))

	// Same instant: the next close must still start a fresh, empty window.
	second, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts(), userID)
	suite.Require().NoError(err)
	suite.True(second.ClosedAt.After(first.ClosedAt))
	suite.Equal(first.ClosedAt, second.WindowStart)
	suite.True(second.SystemExpectedTotal.IsZero())
	suite.Equal(domain.OutcomeBalanced, second.Outcome)

	suite.clock.Advance(time.Hour)
	suite.sell("Maria", "30", nil)
	suite.spend("5")
	third, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts("Efectivo", "25"), userID)
	suite.Require().NoError(err)
	suite.True(dec("25").Equal(third.SystemExpectedTotal))
	suite.True(dec("30").Equal(third.SalesTotal))

	page, err := suite.svc.CashClosure.ListClosures(suite.ctx, tenantID, dto.ListClosuresParams{Page: 1, PageSize: 2})
	suite.Require().NoError(err)
	suite.Equal(3, page.Total)
	suite.Require().Len(page.Closures, 2)
	suite.Equal(third.ClosureID, page.Closures[0].ClosureID)
	suite.Equal(second.ClosureID, page.Closures[1].ClosureID)

	page, err = suite.svc.CashClosure.ListClosures(suite.ctx, tenantID, dto.ListClosuresParams{Page: 2, PageSize: 2})
	suite.Require().NoError(err)
	suite.Require().Len(page.Closures, 1)
	suite.Equal(first.ClosureID, page.Closures[0].ClosureID)
}

func (suite *CashClosureServiceTestSuite) TestCloseShift_InvalidCountsRejected() {
	_, err := suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts("Efectivo", "-1"), userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.svc.CashClosure.CloseShift(suite.ctx, tenantID, counts("Efectivo", "10.00001"), userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	page, err := suite.svc.CashClosure.ListClosures(suite.ctx, tenantID, dto.ListClosuresParams{})
	suite.Require().NoError(err)
	suite.Zero(page.Total)
}

func (suite *CashClosureServiceTestSuite) TestCloseShift_UnknownTenant() {
	_, err := suite.svc.CashClosure.CloseShift(suite.ctx, "nobody", counts("Efectivo", "1"), userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashClosureServiceTestSuite) TestMariaAndSupplierScenarios() {
	maria := dto.CreateDebtRequest{
		Direction:        domain.Receivable,
		CounterpartyName: "Maria",
		Amount:           dec("30.00"),
		LineItems: []dto.LineItemRequest{
			{Name: "Rice", Quantity: dec("2"), UnitPrice: dec("5.00")},
			{Name: "Oil", Quantity: dec("4"), UnitPrice: dec("5.00")},
		},
	}
	debt, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, maria, userID)
	suite.Require().NoError(err)
	res, err := suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, debt.DebtID, pay("30.00"), userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DebtSettled, res.Debt.Status)
	suite.Require().NotNil(res.Sale)
	suite.True(dec("30").Equal(res.Sale.Total))

	supplier, _, err := suite.svc.Debt.CreateDebt(suite.ctx, tenantID, payable("Supplier X", "200.00"), userID)
	suite.Require().NoError(err)
	req := pay("50.00")
	req.DrawFromCashDrawer = true
	res, err = suite.svc.Payment.ApplyPayment(suite.ctx, tenantID, supplier.DebtID, req, userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(res.Expense)
	suite.True(dec("50").Equal(res.Expense.Amount))
	suite.True(dec("50").Equal(res.Debt.AmountPaid))
	suite.Equal(domain.DebtPending, res.Debt.Status)

	suite.clock.Advance(time.Second)
	summary, err := suite.svc.CashClosure.GetOpenShiftSummary(suite.ctx, tenantID)
	suite.Require().NoError(err)
	suite.True(dec("-20").Equal(summary.ExpectedTotal))
	suite.True(dec("-20").Equal(summary.ExpectedByMethod["Efectivo"]))
}
