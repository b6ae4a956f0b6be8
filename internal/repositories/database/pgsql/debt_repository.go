package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
)

const selectDebtFields = `
	debt_id, tenant_id, direction, counterparty_name, phone, note, note_log, line_items,
	total_amount, amount_paid, status, settled_at,
	created_at, created_by, last_updated_at, last_updated_by
`

// PgxDebtRepository implements portsrepo.DebtRepositoryFacade using pgxpool.
type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

func scanDebt(row pgx.Row) (*models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID, &m.TenantID, &m.Direction, &m.CounterpartyName, &m.Phone, &m.Note,
		&m.NoteLog, &m.LineItems, &m.TotalAmount, &m.AmountPaid, &m.Status, &m.SettledAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxDebtRepository) findOne(ctx context.Context, q querier, query string, args ...any) (*domain.Debt, error) {
	m, err := scanDebt(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, storageError(err, "failed to find debt")
	}
	d := mapping.ToDomainDebt(*m)
	return &d, nil
}

// FindDebtByID retrieves a debt scoped to its tenant.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, tenantID, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + selectDebtFields + ` FROM debts WHERE tenant_id = $1 AND debt_id = $2;`
	return r.findOne(ctx, r.Pool, query, tenantID, debtID)
}

// FindDebtByIDForUpdate retrieves and row-locks a debt. Must be called within a transaction.
func (r *PgxDebtRepository) FindDebtByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + selectDebtFields + ` FROM debts WHERE tenant_id = $1 AND debt_id = $2 FOR UPDATE;`
	return r.findOne(ctx, tx, query, tenantID, debtID)
}

// FindOpenReceivableForUpdate locks the counterparty's pending receivable, if one exists.
func (r *PgxDebtRepository) FindOpenReceivableForUpdate(ctx context.Context, tx pgx.Tx, tenantID, normalizedName string) (*domain.Debt, error) {
	query := `SELECT ` + selectDebtFields + `
		FROM debts
		WHERE tenant_id = $1 AND counterparty_key = $2 AND direction = 'RECEIVABLE' AND status = 'PENDING'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE;`
	return r.findOne(ctx, tx, query, tenantID, normalizedName)
}

// ListDebts returns the tenant's debts, newest first.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + selectDebtFields + ` FROM debts WHERE tenant_id = $1`)
	args := []any{tenantID}
	if filter.Direction != nil {
		args = append(args, string(*filter.Direction))
		fmt.Fprintf(&sb, " AND direction = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC, debt_id;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, storageError(err, "failed to list debts")
	}
	defer rows.Close()

	var ms []models.Debt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan debt row")
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating debt rows")
	}
	return mapping.ToDomainDebts(ms), nil
}

// ListDebtPayments returns the payment log of a debt, oldest first.
func (r *PgxDebtRepository) ListDebtPayments(ctx context.Context, tenantID, debtID string) ([]domain.DebtPayment, error) {
	query := `
		SELECT payment_id, debt_id, tenant_id, amount, payment_method_id, draw_from_cash_drawer, paid_at, created_by
		FROM debt_payments
		WHERE tenant_id = $1 AND debt_id = $2
		ORDER BY paid_at, payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, debtID)
	if err != nil {
		return nil, storageError(err, "failed to list debt payments")
	}
	defer rows.Close()

	payments := []domain.DebtPayment{}
	for rows.Next() {
		var m models.DebtPayment
		if err := rows.Scan(&m.PaymentID, &m.DebtID, &m.TenantID, &m.Amount, &m.PaymentMethodID, &m.DrawFromCashDrawer, &m.PaidAt, &m.CreatedBy); err != nil {
			return nil, storageError(err, "failed to scan debt payment row")
		}
		payments = append(payments, mapping.ToDomainDebtPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating debt payment rows")
	}
	return payments, nil
}

// LockCounterpartyInTx takes a transaction-scoped advisory lock on the counterparty key.
func (r *PgxDebtRepository) LockCounterpartyInTx(ctx context.Context, tx pgx.Tx, tenantID string, direction domain.DebtDirection, normalizedName string) error {
	key := tenantID + "|" + string(direction) + "|" + normalizedName
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, key); err != nil {
		return storageError(err, "failed to lock counterparty")
	}
	return nil
}

// SaveDebtInTx inserts a new debt.
func (r *PgxDebtRepository) SaveDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (
			debt_id, tenant_id, direction, counterparty_name, counterparty_key, phone, note, note_log, line_items,
			total_amount, amount_paid, status, settled_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.DebtID, m.TenantID, m.Direction, m.CounterpartyName, domain.NormalizeCounterparty(m.CounterpartyName),
		m.Phone, m.Note, m.NoteLog, m.LineItems, m.TotalAmount, m.AmountPaid, m.Status, m.SettledAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageError(err, "failed to save debt")
	}
	return nil
}

// UpdateDebtInTx overwrites the mutable fields of a debt.
func (r *PgxDebtRepository) UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts
		SET counterparty_name = $3, counterparty_key = $4, phone = $5, note = $6, note_log = $7, line_items = $8,
			total_amount = $9, amount_paid = $10, status = $11, settled_at = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE tenant_id = $1 AND debt_id = $2;
	`
	tag, err := tx.Exec(ctx, query,
		m.TenantID, m.DebtID, m.CounterpartyName, domain.NormalizeCounterparty(m.CounterpartyName),
		m.Phone, m.Note, m.NoteLog, m.LineItems, m.TotalAmount, m.AmountPaid, m.Status, m.SettledAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageError(err, "failed to update debt")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debt.DebtID)
	}
	return nil
}

// SaveDebtPaymentInTx appends a payment record.
func (r *PgxDebtRepository) SaveDebtPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DebtPayment) error {
	m := mapping.ToModelDebtPayment(payment)
	query := `
		INSERT INTO debt_payments (payment_id, debt_id, tenant_id, amount, payment_method_id, draw_from_cash_drawer, paid_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, query, m.PaymentID, m.DebtID, m.TenantID, m.Amount, m.PaymentMethodID, m.DrawFromCashDrawer, m.PaidAt, m.CreatedBy); err != nil {
		return storageError(err, "failed to save debt payment")
	}
	return nil
}

// DeleteDebtInTx removes a debt; its payments cascade.
func (r *PgxDebtRepository) DeleteDebtInTx(ctx context.Context, tx pgx.Tx, tenantID, debtID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM debts WHERE tenant_id = $1 AND debt_id = $2;`, tenantID, debtID)
	if err != nil {
		return storageError(err, "failed to delete debt")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtID)
	}
	return nil
}
