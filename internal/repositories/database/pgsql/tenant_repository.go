package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
)

// PgxTenantRepository implements portsrepo.TenantRepositoryFacade.
type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(db *pgxpool.Pool) *PgxTenantRepository {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

func (r *PgxTenantRepository) findTenant(ctx context.Context, q querier, query, tenantID string) (*domain.Tenant, error) {
	var m models.Tenant
	if err := q.QueryRow(ctx, query, tenantID).Scan(&m.TenantID, &m.Name, &m.BaseCurrency, &m.LocalCurrency, &m.CreatedAt); err != nil {
		return nil, storageError(err, "failed to find tenant")
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

// FindTenantByID retrieves a tenant.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.findTenant(ctx, r.Pool, `SELECT tenant_id, name, base_currency, local_currency, created_at FROM tenants WHERE tenant_id = $1;`, tenantID)
}

// LockTenantInTx retrieves and row-locks a tenant.
func (r *PgxTenantRepository) LockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) (*domain.Tenant, error) {
	return r.findTenant(ctx, tx, `SELECT tenant_id, name, base_currency, local_currency, created_at FROM tenants WHERE tenant_id = $1 FOR UPDATE;`, tenantID)
}

// ShareLockTenantInTx locks the tenant row FOR SHARE. It conflicts only with LockTenantInTx.
func (r *PgxTenantRepository) ShareLockTenantInTx(ctx context.Context, tx pgx.Tx, tenantID string) error {
	var id string
	if err := tx.QueryRow(ctx, `SELECT tenant_id FROM tenants WHERE tenant_id = $1 FOR SHARE;`, tenantID).Scan(&id); err != nil {
		return storageError(err, "failed to lock tenant")
	}
	return nil
}

func (r *PgxTenantRepository) listPaymentMethods(ctx context.Context, q querier, tenantID string) ([]domain.PaymentMethod, error) {
	rows, err := q.Query(ctx, `
		SELECT method_id, tenant_id, name, is_cash, position
		FROM payment_methods
		WHERE tenant_id = $1
		ORDER BY position, name;`, tenantID)
	if err != nil {
		return nil, storageError(err, "failed to list payment methods")
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.MethodID, &m.TenantID, &m.Name, &m.IsCash, &m.Position); err != nil {
			return nil, storageError(err, "failed to scan payment method row")
		}
		methods = append(methods, mapping.ToDomainPaymentMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating payment method rows")
	}
	return methods, nil
}

// ListPaymentMethods returns the tenant's methods in configured order.
func (r *PgxTenantRepository) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	return r.listPaymentMethods(ctx, r.Pool, tenantID)
}

// ListPaymentMethodsInTx is ListPaymentMethods inside a unit of work.
func (r *PgxTenantRepository) ListPaymentMethodsInTx(ctx context.Context, tx pgx.Tx, tenantID string) ([]domain.PaymentMethod, error) {
	return r.listPaymentMethods(ctx, tx, tenantID)
}

// SavePaymentMethod inserts a method; a duplicate name is apperrors.ErrConflict.
func (r *PgxTenantRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payment_methods (method_id, tenant_id, name, is_cash, position)
		VALUES ($1, $2, $3, $4, $5);`, m.MethodID, m.TenantID, m.Name, m.IsCash, m.Position)
	if err != nil {
		return storageError(err, "failed to save payment method")
	}
	return nil
}

// PgxInventoryRepository implements portsrepo.InventoryAdjuster over the products table.
type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(db *pgxpool.Pool) *PgxInventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InventoryAdjuster = (*PgxInventoryRepository)(nil)

func (r *PgxInventoryRepository) adjust(ctx context.Context, tx pgx.Tx, tenantID, productID string, delta decimal.Decimal) error {
	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock = stock + $3, last_updated_at = NOW()
		WHERE tenant_id = $1 AND product_id = $2;`, tenantID, productID, delta)
	if err != nil {
		return storageError(err, "failed to adjust stock")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unknown product %s", apperrors.ErrValidation, productID)
	}
	return nil
}

// DecrementStockInTx removes quantity from a product's stock.
func (r *PgxInventoryRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	return r.adjust(ctx, tx, tenantID, productID, quantity.Neg())
}

// RestoreStockInTx gives quantity back to a product's stock.
func (r *PgxInventoryRepository) RestoreStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	return r.adjust(ctx, tx, tenantID, productID, quantity)
}
