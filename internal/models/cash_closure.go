package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashClosure maps the cash_closures table. The per-method maps are JSONB.
type CashClosure struct {
	ClosureID           string                     `db:"closure_id"`
	TenantID            string                     `db:"tenant_id"`
	ClosedAt            time.Time                  `db:"closed_at"`
	WindowStart         time.Time                  `db:"window_start"`
	SalesTotal          decimal.Decimal            `db:"sales_total"`
	ExpensesTotal       decimal.Decimal            `db:"expenses_total"`
	SystemExpectedTotal decimal.Decimal            `db:"system_expected_total"`
	ExpectedByMethod    map[string]decimal.Decimal `db:"expected_by_method"`
	CountedTotal        decimal.Decimal            `db:"counted_total"`
	CountsByMethod      map[string]decimal.Decimal `db:"counts_by_method"`
	Difference          decimal.Decimal            `db:"difference"`
	Outcome             string                     `db:"outcome"`
	Notes               string                     `db:"notes"`
	CreatedBy           string                     `db:"created_by"`
}
