package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
)

// PgxSaleRepository implements portsrepo.SaleRepositoryFacade.
type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSaleInTx inserts a sale. The unique index on debt_id rejects a second sale per debt.
func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (sale_id, tenant_id, total, total_local, exchange_rate, payment_method_id, debt_id, sold_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query, m.SaleID, m.TenantID, m.Total, m.TotalLocal, m.ExchangeRate, m.PaymentMethodID, m.DebtID, m.SoldAt, m.CreatedBy)
	if err != nil {
		return storageError(err, "failed to save sale")
	}
	return nil
}

// FindSaleByDebtID returns the sale synthesized from a debt.
func (r *PgxSaleRepository) FindSaleByDebtID(ctx context.Context, tenantID, debtID string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, tenant_id, total, total_local, exchange_rate, payment_method_id, debt_id, sold_at, created_by
		FROM sales
		WHERE tenant_id = $1 AND debt_id = $2;
	`
	var m models.Sale
	err := r.Pool.QueryRow(ctx, query, tenantID, debtID).Scan(
		&m.SaleID, &m.TenantID, &m.Total, &m.TotalLocal, &m.ExchangeRate, &m.PaymentMethodID, &m.DebtID, &m.SoldAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, storageError(err, "failed to find sale by debt")
	}
	s := mapping.ToDomainSale(m)
	return &s, nil
}

// PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const insertExpense = `
	INSERT INTO expenses (expense_id, tenant_id, description, amount, payment_method_id, debt_id, spent_at, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxExpenseRepository) saveExpense(ctx context.Context, q querier, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	if _, err := q.Exec(ctx, insertExpense, m.ExpenseID, m.TenantID, m.Description, m.Amount, m.PaymentMethodID, m.DebtID, m.SpentAt, m.CreatedBy); err != nil {
		return storageError(err, "failed to save expense")
	}
	return nil
}

// SaveExpenseInTx records an expense, direct or produced by a payment.
func (r *PgxExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	return r.saveExpense(ctx, tx, expense)
}

// ListExpenses returns expenses spent in (from, to], newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Expense, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT expense_id, tenant_id, description, amount, payment_method_id, debt_id, spent_at, created_by
		FROM expenses
		WHERE tenant_id = $1`)
	args := []any{tenantID}
	if from != nil {
		args = append(args, *from)
		fmt.Fprintf(&sb, " AND spent_at > $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		fmt.Fprintf(&sb, " AND spent_at <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY spent_at DESC, expense_id;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, storageError(err, "failed to list expenses")
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ExpenseID, &m.TenantID, &m.Description, &m.Amount, &m.PaymentMethodID, &m.DebtID, &m.SpentAt, &m.CreatedBy); err != nil {
			return nil, storageError(err, "failed to scan expense row")
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating expense rows")
	}
	return expenses, nil
}
