package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
)

const selectClosureFields = `
	closure_id, tenant_id, closed_at, window_start, sales_total, expenses_total, system_expected_total,
	expected_by_method, counted_total, counts_by_method, difference, outcome, notes, created_by
`

// PgxCashClosureRepository implements portsrepo.CashClosureRepositoryFacade.
type PgxCashClosureRepository struct {
	BaseRepository
}

func newPgxCashClosureRepository(db *pgxpool.Pool) *PgxCashClosureRepository {
	return &PgxCashClosureRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CashClosureRepositoryFacade = (*PgxCashClosureRepository)(nil)

func scanClosure(row pgx.Row) (*domain.CashClosure, error) {
	var m models.CashClosure
	err := row.Scan(
		&m.ClosureID, &m.TenantID, &m.ClosedAt, &m.WindowStart, &m.SalesTotal, &m.ExpensesTotal, &m.SystemExpectedTotal,
		&m.ExpectedByMethod, &m.CountedTotal, &m.CountsByMethod, &m.Difference, &m.Outcome, &m.Notes, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCashClosure(m)
	return &c, nil
}

func (r *PgxCashClosureRepository) findLatest(ctx context.Context, q querier, tenantID string) (*domain.CashClosure, error) {
	query := `SELECT ` + selectClosureFields + ` FROM cash_closures WHERE tenant_id = $1 ORDER BY closed_at DESC LIMIT 1;`
	c, err := scanClosure(q.QueryRow(ctx, query, tenantID))
	if err != nil {
		return nil, storageError(err, "failed to find latest closure")
	}
	return c, nil
}

// FindLatestClosure returns the tenant's most recent closure.
func (r *PgxCashClosureRepository) FindLatestClosure(ctx context.Context, tenantID string) (*domain.CashClosure, error) {
	return r.findLatest(ctx, r.Pool, tenantID)
}

// FindLatestClosureInTx is FindLatestClosure inside a shift close.
func (r *PgxCashClosureRepository) FindLatestClosureInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.CashClosure, error) {
	return r.findLatest(ctx, tx, tenantID)
}

func sumByMethod(ctx context.Context, q querier, query string, args ...any) ([]domain.MethodTotal, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to aggregate window")
	}
	defer rows.Close()

	var totals []domain.MethodTotal
	for rows.Next() {
		var t domain.MethodTotal
		if err := rows.Scan(&t.MethodID, &t.Total, &t.Count); err != nil {
			return nil, storageError(err, "failed to scan window aggregate")
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating window aggregates")
	}
	return totals, nil
}

func (r *PgxCashClosureRepository) sumWindow(ctx context.Context, q querier, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	sales, err := sumByMethod(ctx, q, `
		SELECT payment_method_id, COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE tenant_id = $1 AND sold_at > $2 AND sold_at <= $3
		GROUP BY payment_method_id;`, tenantID, start, end)
	if err != nil {
		return domain.WindowTotals{}, err
	}
	expenses, err := sumByMethod(ctx, q, `
		SELECT payment_method_id, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE tenant_id = $1 AND spent_at > $2 AND spent_at <= $3
		GROUP BY payment_method_id;`, tenantID, start, end)
	if err != nil {
		return domain.WindowTotals{}, err
	}
	return domain.WindowTotals{Sales: sales, Expenses: expenses}, nil
}

// SumWindow aggregates sales and expenses over (start, end].
func (r *PgxCashClosureRepository) SumWindow(ctx context.Context, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	return r.sumWindow(ctx, r.Pool, tenantID, start, end)
}

// SumWindowInTx is SumWindow inside a shift close.
func (r *PgxCashClosureRepository) SumWindowInTx(ctx context.Context, tx pgx.Tx, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	return r.sumWindow(ctx, tx, tenantID, start, end)
}

// SaveClosureInTx inserts an immutable closure.
func (r *PgxCashClosureRepository) SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error {
	m := mapping.ToModelCashClosure(closure)
	query := `
		INSERT INTO cash_closures (` + selectClosureFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.ClosureID, m.TenantID, m.ClosedAt, m.WindowStart, m.SalesTotal, m.ExpensesTotal, m.SystemExpectedTotal,
		m.ExpectedByMethod, m.CountedTotal, m.CountsByMethod, m.Difference, m.Outcome, m.Notes, m.CreatedBy,
	)
	if err != nil {
		return storageError(err, "failed to save closure")
	}
	return nil
}

// FindClosureByID retrieves a closure scoped to its tenant.
func (r *PgxCashClosureRepository) FindClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error) {
	query := `SELECT ` + selectClosureFields + ` FROM cash_closures WHERE tenant_id = $1 AND closure_id = $2;`
	c, err := scanClosure(r.Pool.QueryRow(ctx, query, tenantID, closureID))
	if err != nil {
		return nil, storageError(err, "failed to find closure")
	}
	return c, nil
}

// ListClosures returns a page of closures, newest first, with the tenant's total.
func (r *PgxCashClosureRepository) ListClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.CashClosure, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_closures WHERE tenant_id = $1;`, tenantID).Scan(&total); err != nil {
		return nil, 0, storageError(err, "failed to count closures")
	}

	query := `SELECT ` + selectClosureFields + `
		FROM cash_closures
		WHERE tenant_id = $1
		ORDER BY closed_at DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, storageError(err, "failed to list closures")
	}
	defer rows.Close()

	closures := []domain.CashClosure{}
	for rows.Next() {
		c, err := scanClosure(rows)
		if err != nil {
			return nil, 0, storageError(err, "failed to scan closure row")
		}
		closures = append(closures, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageError(err, "error iterating closure rows")
	}
	return closures, total, nil
}
