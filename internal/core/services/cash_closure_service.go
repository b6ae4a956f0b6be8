package services

import (
	"context"
	"errors"
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
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
)

type cashClosureService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	closureRepo portsrepo.CashClosureRepositoryFacade
	tenantRepo  portsrepo.TenantRepositoryFacade
}

var _ portssvc.CashClosureSvcFacade = (*cashClosureService)(nil)

// NewCashClosureService creates the drawer reconciliation service.
func NewCashClosureService(
	txManager portsrepo.TransactionManager,
	closureRepo portsrepo.CashClosureRepositoryFacade,
	tenantRepo portsrepo.TenantRepositoryFacade,
	options ...ServiceOption,
) portssvc.CashClosureSvcFacade {
	return &cashClosureService{
		BaseService: newBaseService(options...),
		txManager:   txManager,
		closureRepo: closureRepo,
		tenantRepo:  tenantRepo,
	}
}

// windowStart is the previous closure time, or the tenant's creation for its first shift.
func windowStart(tenant *domain.Tenant, latest *domain.CashClosure, err error) (time.Time, error) {
	if err == nil {
		return latest.ClosedAt, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return tenant.CreatedAt.UTC(), nil
	}
	return time.Time{}, err
}

func (s *cashClosureService) GetOpenShiftSummary(ctx context.Context, tenantID string) (*domain.ShiftSummary, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load tenant for shift summary", slog.String("tenant_id", tenantID))
		return nil, err
	}

	latest, err := s.closureRepo.FindLatestClosure(ctx, tenantID)
	start, err := windowStart(tenant, latest, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to load latest closure", slog.String("tenant_id", tenantID))
		return nil, err
	}

	end := s.Now()
	if end.Before(start) {
		end = start
	}

	totals, err := s.closureRepo.SumWindow(ctx, tenantID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum shift window", slog.String("tenant_id", tenantID))
		return nil, err
	}
	methods, err := s.tenantRepo.ListPaymentMethods(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods", slog.String("tenant_id", tenantID))
		return nil, err
	}

	summary := domain.BuildShiftSummary(start, end, totals, methods)
	return &summary, nil
}

func (s *cashClosureService) CloseShift(ctx context.Context, tenantID string, req dto.CloseShiftRequest, userID string) (*domain.CashClosure, error) {
	counts := make(map[string]decimal.Decimal, len(req.CountsByMethod))
	for name, amount := range req.CountsByMethod {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: count for %q cannot be negative", apperrors.ErrInvalidAmount, name)
		}
		if !domain.FitsMoneyScale(amount) {
			return nil, fmt.Errorf("%w: count for %q has more than %d decimal places", apperrors.ErrInvalidAmount, name, domain.MoneyScale)
		}
		counts[name] = amount
	}

	var closure *domain.CashClosure
	err := s.retryOnConflict(ctx, "close_shift", func() error {
		var opErr error
		closure, opErr = s.closeShiftOnce(ctx, tenantID, counts, req.Notes, userID)
		return opErr
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to close shift", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift closed",
		slog.String("closure_id", closure.ClosureID),
		slog.String("expected", closure.SystemExpectedTotal.String()),
		slog.String("counted", closure.CountedTotal.String()),
		slog.String("difference", closure.Difference.String()),
		slog.String("outcome", string(closure.Outcome)))
	return closure, nil
}

func (s *cashClosureService) closeShiftOnce(ctx context.Context, tenantID string, counts map[string]decimal.Decimal, notes, userID string) (*domain.CashClosure, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op after commit

	tenant, err := s.tenantRepo.LockTenantInTx(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	latest, err := s.closureRepo.FindLatestClosureInTx(ctx, tx, tenantID)
	start, err := windowStart(tenant, latest, err)
	if err != nil {
		return nil, err
	}
	closedAt := s.Now()
	if !closedAt.After(start) {
		closedAt = start.Add(time.Microsecond)
	}

	closure, err := s.reconcile(ctx, tx, tenantID, start, closedAt, counts)
	if err != nil {
		return nil, err
	}
	closure.ClosureID = uuid.NewString()
	closure.Notes = notes
	closure.CreatedBy = userID

	if err := s.closureRepo.SaveClosureInTx(ctx, tx, closure); err != nil {
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &closure, nil
}

// reconcile recomputes the expectation for (start, end] and compares it with the count.
func (s *cashClosureService) reconcile(ctx context.Context, tx pgx.Tx, tenantID string, start, end time.Time, counts map[string]decimal.Decimal) (domain.CashClosure, error) {
	totals, err := s.closureRepo.SumWindowInTx(ctx, tx, tenantID, start, end)
	if err != nil {
		return domain.CashClosure{}, err
	}
	methods, err := s.tenantRepo.ListPaymentMethodsInTx(ctx, tx, tenantID)
	if err != nil {
		return domain.CashClosure{}, err
	}

	summary := domain.BuildShiftSummary(start, end, totals, methods)
	counted := domain.SumCounts(counts)
	difference := counted.Sub(summary.ExpectedTotal)

	return domain.CashClosure{
		TenantID:            tenantID,
		ClosedAt:            end,
		WindowStart:         start,
		SalesTotal:          summary.SalesTotal,
		ExpensesTotal:       summary.ExpensesTotal,
		SystemExpectedTotal: summary.ExpectedTotal,
		ExpectedByMethod:    summary.ExpectedByMethod,
		CountedTotal:        counted,
		CountsByMethod:      counts,
		Difference:          difference,
		Outcome:             domain.ClassifyDifference(difference),
	}, nil
}

func (s *cashClosureService) ListClosures(ctx context.Context, tenantID string, params dto.ListClosuresParams) (*dto.ListClosuresResponse, error) {
	page := pagination.Normalize(params.Page, params.PageSize)

	closures, total, err := s.closureRepo.ListClosures(ctx, tenantID, page.Limit(), page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list closures", slog.String("tenant_id", tenantID))
		return nil, err
	}

	resp := &dto.ListClosuresResponse{
		Closures: make([]dto.CashClosureResponse, len(closures)),
		Page:     page.Number,
		PageSize: page.Size,
		Total:    total,
	}
	for i := range closures {
		resp.Closures[i] = dto.ToCashClosureResponse(&closures[i])
	}
	return resp, nil
}

func (s *cashClosureService) GetClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error) {
	closure, err := s.closureRepo.FindClosureByID(ctx, tenantID, closureID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get closure", slog.String("closure_id", closureID))
		return nil, err
	}
	return closure, nil
}
