package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type paymentService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	debtRepo     portsrepo.DebtRepositoryFacade
	saleRepo     portsrepo.SaleWriter
	expenseRepo  portsrepo.ExpenseWriter
	tenantRepo   portsrepo.TenantRepositoryFacade
	rates        portssvc.RateProvider
	fallbackRate decimal.Decimal
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// NewPaymentService creates the abono engine.
func NewPaymentService(
	txManager portsrepo.TransactionManager,
	debtRepo portsrepo.DebtRepositoryFacade,
	saleRepo portsrepo.SaleWriter,
	expenseRepo portsrepo.ExpenseWriter,
	tenantRepo portsrepo.TenantRepositoryFacade,
	rates portssvc.RateProvider,
	fallbackRate decimal.Decimal,
	options ...ServiceOption,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService:  newBaseService(options...),
		txManager:    txManager,
		debtRepo:     debtRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		tenantRepo:   tenantRepo,
		rates:        rates,
		fallbackRate: fallbackRate,
	}
}

func (s *paymentService) ApplyPayment(ctx context.Context, tenantID, debtID string, req dto.ApplyPaymentRequest, userID string) (*domain.PaymentResult, error) {
	if !req.PaymentAmount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if !domain.FitsMoneyScale(req.PaymentAmount) {
		return nil, fmt.Errorf("%w: payment amount has more than %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}

	result, err := s.applyPayment(ctx, tenantID, debtID, req, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Payment rolled back",
			slog.String("debt_id", debtID),
			slog.String("amount", req.PaymentAmount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Payment applied",
		slog.String("debt_id", debtID),
		slog.String("payment_id", result.Payment.PaymentID),
		slog.String("amount", req.PaymentAmount.String()),
		slog.String("status", string(result.Debt.Status)),
		slog.Bool("sale_created", result.Sale != nil),
		slog.Bool("expense_created", result.Expense != nil))
	return result, nil
}

func (s *paymentService) applyPayment(ctx context.Context, tenantID, debtID string, req dto.ApplyPaymentRequest, userID string) (*domain.PaymentResult, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op after commit

	// Held until commit so a concurrent close either sees this payment's records or waits.
	if err := s.tenantRepo.ShareLockTenantInTx(ctx, tx, tenantID); err != nil {
		return nil, err
	}
	debt, err := s.debtRepo.FindDebtByIDForUpdate(ctx, tx, tenantID, debtID)
	if err != nil {
		return nil, err
	}

	// Stamped after the locks, so the records never predate a close committed before them.
	now := s.Now()
	settled, err := debt.ApplyPayment(req.PaymentAmount, now, userID)
	if err != nil {
		return nil, err
	}

	needsMethods := req.PaymentMethodID != nil ||
		(settled && debt.Direction == domain.Receivable) ||
		(debt.Direction == domain.Payable && req.DrawFromCashDrawer)
	var (
		methods  []domain.PaymentMethod
		explicit *domain.PaymentMethod
	)
	if needsMethods {
		methods, err = s.tenantRepo.ListPaymentMethodsInTx(ctx, tx, tenantID)
		if err != nil {
			return nil, err
		}
		if req.PaymentMethodID != nil {
			explicit = domain.FindPaymentMethod(methods, *req.PaymentMethodID)
			if explicit == nil {
				return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, *req.PaymentMethodID)
			}
		}
	}

	if err := s.debtRepo.UpdateDebtInTx(ctx, tx, *debt); err != nil {
		return nil, err
	}
	payment := domain.DebtPayment{
		PaymentID:          uuid.NewString(),
		DebtID:             debt.DebtID,
		TenantID:           tenantID,
		Amount:             req.PaymentAmount,
		PaymentMethodID:    req.PaymentMethodID,
		DrawFromCashDrawer: req.DrawFromCashDrawer,
		PaidAt:             now,
		CreatedBy:          userID,
	}
	if err := s.debtRepo.SaveDebtPaymentInTx(ctx, tx, payment); err != nil {
		return nil, err
	}

	result := &domain.PaymentResult{Debt: *debt, Payment: payment}

	if settled && debt.Direction == domain.Receivable {
		if err := s.recordSale(ctx, tx, debt, explicit, methods, now, userID, result); err != nil {
			return nil, err
		}
	}

	if debt.Direction == domain.Payable && req.DrawFromCashDrawer {
		if err := s.recordDrawerExpense(ctx, tx, debt, payment, explicit, methods, result); err != nil {
			return nil, err
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

// recordSale synthesizes the revenue of a settled receivable.
func (s *paymentService) recordSale(ctx context.Context, tx pgx.Tx, debt *domain.Debt, explicit *domain.PaymentMethod, methods []domain.PaymentMethod, now time.Time, userID string, result *domain.PaymentResult) error {
	method := explicit
	if method == nil {
		method = domain.FirstPaymentMethod(methods)
	}
	if method == nil {
		return fmt.Errorf("%w: tenant %s", domain.ErrPaymentMethodRequired, debt.TenantID)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, debt.TenantID)
	if err != nil {
		return err
	}
	quote := rateOrFallback(ctx, &s.BaseService, s.rates, s.fallbackRate, tenant.BaseCurrency, tenant.LocalCurrency)

	debtID := debt.DebtID
	sale := domain.Sale{
		SaleID:          uuid.NewString(),
		TenantID:        debt.TenantID,
		Total:           debt.TotalAmount,
		TotalLocal:      debt.TotalAmount.Mul(quote.Rate).Round(2),
		ExchangeRate:    quote.Rate,
		PaymentMethodID: method.MethodID,
		DebtID:          &debtID,
		SoldAt:          now,
		CreatedBy:       userID,
	}
	if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale); err != nil {
		return err
	}

	result.Sale = &sale
	result.RateFromCache = quote.FromCache
	result.RateFallback = quote.Fallback
	return nil
}

// recordDrawerExpense takes a supplier payment out of the drawer.
func (s *paymentService) recordDrawerExpense(ctx context.Context, tx pgx.Tx, debt *domain.Debt, payment domain.DebtPayment, explicit *domain.PaymentMethod, methods []domain.PaymentMethod, result *domain.PaymentResult) error {
	var methodID *string
	switch {
	case explicit != nil:
		id := explicit.MethodID
		methodID = &id
	default:
		if cash := domain.CashMethod(methods); cash != nil {
			id := cash.MethodID
			methodID = &id
		}
	}

	debtID := debt.DebtID
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		TenantID:        debt.TenantID,
		Description:     "Pago a " + debt.CounterpartyName,
		Amount:          payment.Amount,
		PaymentMethodID: methodID,
		DebtID:          &debtID,
		SpentAt:         payment.PaidAt,
		CreatedBy:       payment.CreatedBy,
	}
	if err := s.expenseRepo.SaveExpenseInTx(ctx, tx, expense); err != nil {
		return err
	}
	result.Expense = &expense
	return nil
}
