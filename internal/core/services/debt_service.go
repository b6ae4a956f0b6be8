package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

type debtService struct {
	BaseService
	txManager portsrepo.TransactionManager
	debtRepo  portsrepo.DebtRepositoryFacade
	inventory portsrepo.InventoryAdjuster
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// NewDebtService creates the debt ledger service.
func NewDebtService(
	txManager portsrepo.TransactionManager,
	debtRepo portsrepo.DebtRepositoryFacade,
	inventory portsrepo.InventoryAdjuster,
	options ...ServiceOption,
) portssvc.DebtSvcFacade {
	return &debtService{
		BaseService: newBaseService(options...),
		txManager:   txManager,
		debtRepo:    debtRepo,
		inventory:   inventory,
	}
}

func (s *debtService) ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return debts, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, tenantID, debtID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find debt", slog.String("debt_id", debtID))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error) {
	if _, err := s.GetDebtByID(ctx, tenantID, debtID); err != nil {
		return nil, err
	}
	payments, err := s.debtRepo.ListDebtPayments(ctx, tenantID, debtID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debt payments", slog.String("debt_id", debtID))
		return nil, err
	}
	return payments, nil
}

func (s *debtService) CreateDebt(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, bool, error) {
	switch req.Direction {
	case domain.Receivable:
		return s.CreateOrMergeReceivable(ctx, tenantID, req, userID)
	case domain.Payable:
		debt, err := s.CreatePayable(ctx, tenantID, req, userID)
		return debt, false, err
	default:
		return nil, false, fmt.Errorf("%w: unknown debt direction %q", apperrors.ErrValidation, req.Direction)
	}
}

// resolveAmount validates the request and returns the amount it adds to the debt.
func resolveAmount(req dto.CreateDebtRequest) (decimal.Decimal, error) {
	if strings.TrimSpace(req.CounterpartyName) == "" {
		return decimal.Zero, fmt.Errorf("%w: counterparty name is required", apperrors.ErrValidation)
	}
	if err := validateLineItems(req.LineItems); err != nil {
		return decimal.Zero, err
	}
	amount := req.Amount
	if amount.IsZero() && len(req.LineItems) > 0 {
		amount = domain.LineItemsTotal(toDomainLineItems(req.LineItems, time.Time{})).Round(domain.MoneyScale)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: debt amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if !domain.FitsMoneyScale(amount) {
		return decimal.Zero, fmt.Errorf("%w: debt amount has more than %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}
	return amount, nil
}

func validateLineItems(items []dto.LineItemRequest) error {
	for _, item := range items {
		if !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: line item %q needs a positive quantity and a non-negative price", apperrors.ErrInvalidAmount, item.Name)
		}
		if !domain.FitsMoneyScale(item.Quantity) {
			return fmt.Errorf("%w: line item %q quantity has more than %d decimal places", apperrors.ErrInvalidAmount, item.Name, domain.MoneyScale)
		}
	}
	return nil
}

func toDomainLineItems(items []dto.LineItemRequest, now time.Time) []domain.DebtLineItem {
	out := make([]domain.DebtLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.DebtLineItem{
			ProductID:  item.ProductID,
			Name:       strings.TrimSpace(item.Name),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			IsWeighted: item.IsWeighted,
			AddedAt:    now,
		})
	}
	return out
}

// carryLineItems builds the corrected item list. An item matching a previous one by product
// and name keeps that item's AddedAt; only genuinely new items are stamped with now.
func carryLineItems(previous []domain.DebtLineItem, items []dto.LineItemRequest, now time.Time) []domain.DebtLineItem {
	out := toDomainLineItems(items, now)
	used := make([]bool, len(previous))
	for i := range out {
		for j, old := range previous {
			if !used[j] && sameLineItem(old, out[i]) {
				out[i].AddedAt = old.AddedAt
				used[j] = true
				break
			}
		}
	}
	return out
}

func sameLineItem(a, b domain.DebtLineItem) bool {
	if (a.ProductID == nil) != (b.ProductID == nil) {
		return false
	}
	if a.ProductID != nil && *a.ProductID != *b.ProductID {
		return false
	}
	return strings.EqualFold(a.Name, b.Name)
}

func cleanPhone(phone *string) *string {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return nil
	}
	p := strings.TrimSpace(*phone)
	return &p
}

func newDebt(tenantID string, direction domain.DebtDirection, req dto.CreateDebtRequest, amount decimal.Decimal, now time.Time, userID string) domain.Debt {
	debt := domain.Debt{
		DebtID:           uuid.NewString(),
		TenantID:         tenantID,
		Direction:        direction,
		CounterpartyName: strings.Join(strings.Fields(req.CounterpartyName), " "),
		Phone:            cleanPhone(req.Phone),
		NoteLog:          []domain.DebtNote{},
		LineItems:        toDomainLineItems(req.LineItems, now),
		TotalAmount:      amount,
		AmountPaid:       decimal.Zero,
		Status:           domain.DebtPending,
		AuditFields:      domain.NewAuditFields(now, userID),
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		debt.Note = note
		debt.NoteLog = append(debt.NoteLog, domain.DebtNote{At: now, Text: note})
	}
	return debt
}

// adjustStock moves stock for every catalog-backed line item. restore gives it back.
func (s *debtService) adjustStock(ctx context.Context, tx pgx.Tx, tenantID string, items []domain.DebtLineItem, restore bool) error {
	for _, item := range items {
		if item.ProductID == nil || *item.ProductID == "" {
			continue
		}
		var err error
		if restore {
			err = s.inventory.RestoreStockInTx(ctx, tx, tenantID, *item.ProductID, item.Quantity)
		} else {
			err = s.inventory.DecrementStockInTx(ctx, tx, tenantID, *item.ProductID, item.Quantity)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *debtService) CreateOrMergeReceivable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, bool, error) {
	amount, err := resolveAmount(req)
	if err != nil {
		return nil, false, err
	}

	var (
		result *domain.Debt
		merged bool
	)
	err = s.retryOnConflict(ctx, "create_or_merge_receivable", func() error {
		var attemptErr error
		result, merged, attemptErr = s.createOrMergeOnce(ctx, tenantID, req, amount, userID)
		return attemptErr
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to create or merge receivable", slog.String("tenant_id", tenantID))
		return nil, false, err
	}

	s.LogInfo(ctx, "Receivable recorded",
		slog.String("debt_id", result.DebtID),
		slog.Bool("merged", merged),
		slog.String("amount", amount.String()))
	return result, merged, nil
}

func (s *debtService) createOrMergeOnce(ctx context.Context, tenantID string, req dto.CreateDebtRequest, amount decimal.Decimal, userID string) (*domain.Debt, bool, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op after commit

	key := domain.NormalizeCounterparty(req.CounterpartyName)
	if err := s.debtRepo.LockCounterpartyInTx(ctx, tx, tenantID, domain.Receivable, key); err != nil {
		return nil, false, err
	}

	now := s.Now()
	items := toDomainLineItems(req.LineItems, now)
	if err := s.adjustStock(ctx, tx, tenantID, items, false); err != nil {
		return nil, false, err
	}

	existing, err := s.debtRepo.FindOpenReceivableForUpdate(ctx, tx, tenantID, key)
	switch {
	case err == nil:
		existing.Merge(items, amount, req.Note, req.Phone, now, userID)
		if err := s.debtRepo.UpdateDebtInTx(ctx, tx, *existing); err != nil {
			return nil, false, err
		}
		if err := s.txManager.Commit(ctx, tx); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		debt := newDebt(tenantID, domain.Receivable, req, amount, now, userID)
		if err := s.debtRepo.SaveDebtInTx(ctx, tx, debt); err != nil {
			return nil, false, err
		}
		if err := s.txManager.Commit(ctx, tx); err != nil {
			return nil, false, err
		}
		return &debt, false, nil
	default:
		return nil, false, err
	}
}

func (s *debtService) CreatePayable(ctx context.Context, tenantID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	amount, err := resolveAmount(req)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	debt := newDebt(tenantID, domain.Payable, req, amount, s.Now(), userID)
	if err := s.debtRepo.SaveDebtInTx(ctx, tx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save payable", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payable recorded", slog.String("debt_id", debt.DebtID), slog.String("amount", amount.String()))
	return &debt, nil
}

func (s *debtService) EditDebt(ctx context.Context, tenantID, debtID string, req dto.EditDebtRequest, userID string) (*domain.Debt, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	debt, err := s.debtRepo.FindDebtByIDForUpdate(ctx, tx, tenantID, debtID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load debt for edit", slog.String("debt_id", debtID))
		return nil, err
	}
	if debt.IsSettled() {
		return nil, fmt.Errorf("%w: debt %s cannot be edited", domain.ErrDebtSettled, debtID)
	}

	now := s.Now()
	previousItems := debt.LineItems
	if err := applyEdit(debt, req, now); err != nil {
		return nil, err
	}
	// Receivables took their stock at creation, so corrected items move it again.
	if req.LineItems != nil && debt.Direction == domain.Receivable {
		if err := s.adjustStock(ctx, tx, tenantID, previousItems, true); err != nil {
			s.logUnexpected(ctx, err, "Failed to restore stock for edit", slog.String("debt_id", debtID))
			return nil, err
		}
		if err := s.adjustStock(ctx, tx, tenantID, debt.LineItems, false); err != nil {
			s.logUnexpected(ctx, err, "Failed to take stock for edit", slog.String("debt_id", debtID))
			return nil, err
		}
	}
	debt.RecomputeStatus(now)
	debt.Touch(now, userID)

	if err := s.debtRepo.UpdateDebtInTx(ctx, tx, *debt); err != nil {
		s.logUnexpected(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Debt edited", slog.String("debt_id", debtID), slog.String("status", string(debt.Status)))
	return debt, nil
}

func applyEdit(debt *domain.Debt, req dto.EditDebtRequest, now time.Time) error {
	if req.CounterpartyName != nil {
		name := strings.Join(strings.Fields(*req.CounterpartyName), " ")
		if name == "" {
			return fmt.Errorf("%w: counterparty name cannot be blank", apperrors.ErrValidation)
		}
		debt.CounterpartyName = name
	}
	if req.Phone != nil {
		debt.Phone = cleanPhone(req.Phone)
	}
	if req.Note != nil {
		debt.Note = strings.TrimSpace(*req.Note)
	}
	if req.LineItems != nil {
		if err := validateLineItems(req.LineItems); err != nil {
			return err
		}
		debt.LineItems = carryLineItems(debt.LineItems, req.LineItems, now)
	}

	switch {
	case req.TotalAmount != nil:
		debt.TotalAmount = *req.TotalAmount
	case len(req.LineItems) > 0:
		debt.TotalAmount = domain.LineItemsTotal(debt.LineItems).Round(domain.MoneyScale)
	}
	if debt.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total amount cannot be negative", apperrors.ErrInvalidAmount)
	}
	if !domain.FitsMoneyScale(debt.TotalAmount) {
		return fmt.Errorf("%w: total amount has more than %d decimal places", apperrors.ErrInvalidAmount, domain.MoneyScale)
	}
	if debt.TotalAmount.LessThan(debt.AmountPaid.Sub(domain.SettlementTolerance)) {
		return fmt.Errorf("%w: total %s is below the %s already paid", apperrors.ErrInvalidAmount,
			debt.TotalAmount.StringFixed(2), debt.AmountPaid.StringFixed(2))
	}
	return nil
}

func (s *debtService) DeleteDebt(ctx context.Context, tenantID, debtID string, restoreStock bool, userID string) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.txManager.Rollback(ctx, tx)

	debt, err := s.debtRepo.FindDebtByIDForUpdate(ctx, tx, tenantID, debtID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load debt for delete", slog.String("debt_id", debtID))
		return err
	}

	restored := restoreStock && debt.Direction == domain.Receivable && debt.Status == domain.DebtPending
	if restored {
		if err := s.adjustStock(ctx, tx, tenantID, debt.LineItems, true); err != nil {
			s.logUnexpected(ctx, err, "Failed to restore stock", slog.String("debt_id", debtID))
			return err
		}
	}
	if err := s.debtRepo.DeleteDebtInTx(ctx, tx, tenantID, debtID); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Debt deleted",
		slog.String("debt_id", debtID),
		slog.String("deleted_by", userID),
		slog.Bool("stock_restored", restored))
	return nil
}
