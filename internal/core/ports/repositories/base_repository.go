package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the unit of work a ledger mutation runs in. Rows read through a
// ...ForUpdate or Lock...InTx method stay locked until the transaction ends, and every
// ...InTx write becomes visible together at Commit or not at all.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit failures match apperrors.ErrInternal; nothing from the tx is visible afterwards.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback after a successful Commit is a no-op, so callers defer it right after Begin.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
