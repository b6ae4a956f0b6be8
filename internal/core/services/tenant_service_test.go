package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type SupportServicesTestSuite struct {
	ledgerSuite
}

func TestSupportServicesTestSuite(t *testing.T) {
	suite.Run(t, new(SupportServicesTestSuite))
}

func (suite *SupportServicesTestSuite) TestGetTenant() {
	tenant, err := suite.svc.Tenant.GetTenant(suite.ctx, tenantID)
	suite.Require().NoError(err)
	suite.Equal("VES", tenant.LocalCurrency)

	_, err = suite.svc.Tenant.GetTenant(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SupportServicesTestSuite) TestCreatePaymentMethod_AppendsAfterExisting() {
	method, err := suite.svc.PaymentMethod.CreatePaymentMethod(suite.ctx, tenantID, dto.CreatePaymentMethodRequest{Name: "  Pago   Movil "}, userID)
	suite.Require().NoError(err)
	suite.Equal("Pago Movil", method.Name)
	suite.Equal(2, method.Position)

	methods, err := suite.svc.PaymentMethod.ListPaymentMethods(suite.ctx, tenantID)
	suite.Require().NoError(err)
	suite.Require().Len(methods, 3)
	suite.Equal(cashID, methods[0].MethodID)
	suite.Equal(method.MethodID, methods[2].MethodID)

	_, err = suite.svc.PaymentMethod.CreatePaymentMethod(suite.ctx, tenantID, dto.CreatePaymentMethodRequest{Name: "Efectivo"}, userID)
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.svc.PaymentMethod.CreatePaymentMethod(suite.ctx, tenantID, dto.CreatePaymentMethodRequest{Name: "unassigned"}, userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SupportServicesTestSuite) TestExpenses() {
	_, err := suite.svc.Expense.CreateExpense(suite.ctx, tenantID, dto.CreateExpenseRequest{Description: "Hielo", Amount: dec("0")}, userID)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.Expense.CreateExpense(suite.ctx, tenantID, dto.CreateExpenseRequest{Description: "Hielo", Amount: dec("3"), PaymentMethodID: strPtr("other-cash")}, userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	first, err := suite.svc.Expense.CreateExpense(suite.ctx, tenantID, dto.CreateExpenseRequest{Description: "Hielo", Amount: dec("3")}, userID)
	suite.Require().NoError(err)
	suite.Nil(first.PaymentMethodID)

	suite.clock.Advance(time.Hour)
	second, err := suite.svc.Expense.CreateExpense(suite.ctx, tenantID, dto.CreateExpenseRequest{Description: "Bolsas", Amount: dec("2"), PaymentMethodID: strPtr(cardID)}, userID)
	suite.Require().NoError(err)

	all, err := suite.svc.Expense.ListExpenses(suite.ctx, tenantID, dto.ListExpensesParams{})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	from := t0
	later, err := suite.svc.Expense.ListExpenses(suite.ctx, tenantID, dto.ListExpensesParams{From: &from})
	suite.Require().NoError(err)
	suite.Require().Len(later, 1)
	suite.Equal(second.ExpenseID, later[0].ExpenseID)

	before := t0.Add(-time.Second)
	_, err = suite.svc.Expense.ListExpenses(suite.ctx, tenantID, dto.ListExpensesParams{From: &from, To: &before})
	suite.ErrorIs(err, apperrors.ErrValidation)
}
