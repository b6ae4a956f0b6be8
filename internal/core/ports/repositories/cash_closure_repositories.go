package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CashClosureReader defines read operations for cash closures and their windows
type CashClosureReader interface {
	// FindLatestClosure returns the most recent closure; apperrors.ErrNotFound when the tenant never closed.
	FindLatestClosure(ctx context.Context, tenantID string) (*domain.CashClosure, error)

	// SumWindow aggregates sales and expenses by payment method over (start, end].
	SumWindow(ctx context.Context, tenantID string, start, end time.Time) (domain.WindowTotals, error)

	FindClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error)

	// ListClosures returns one page of closures, newest first, plus the total count.
	ListClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.CashClosure, int, error)
}

// CashClosureWriter defines the transactional operations of a shift close
type CashClosureWriter interface {
	FindLatestClosureInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.CashClosure, error)
	SumWindowInTx(ctx context.Context, tx pgx.Tx, tenantID string, start, end time.Time) (domain.WindowTotals, error)

	// SaveClosureInTx inserts a closure; a closure for the same window start is apperrors.ErrConflict.
	SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error
}

// CashClosureRepositoryFacade combines all closure-related repository interfaces
type CashClosureRepositoryFacade interface {
	CashClosureReader
	CashClosureWriter
}
