package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// InventoryAdjuster changes product stock inside the caller's transaction.
// An unknown product for the tenant is reported as apperrors.ErrValidation.
type InventoryAdjuster interface {
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error
	RestoreStockInTx(ctx context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error
}
