package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosureOutcome classifies a reconciliation. It is advisory and never blocks a close.
type ClosureOutcome string

const (
	OutcomeBalanced ClosureOutcome = "BALANCED"
	OutcomeSurplus  ClosureOutcome = "SURPLUS"
	OutcomeShortage ClosureOutcome = "SHORTAGE"
)

// UnassignedMethod buckets expenses that have no payment method when the tenant has no cash method.
const UnassignedMethod = "unassigned"

// BalanceTolerance is the largest absolute difference still reported as balanced (exclusive).
var BalanceTolerance = decimal.New(1, -2)

// ClassifyDifference maps counted minus expected to an outcome.
func ClassifyDifference(difference decimal.Decimal) ClosureOutcome {
	switch {
	case difference.Abs().LessThan(BalanceTolerance):
		return OutcomeBalanced
	case difference.IsPositive():
		return OutcomeSurplus
	default:
		return OutcomeShortage
	}
}

// CashClosure is an immutable end-of-shift reconciliation record.
type CashClosure struct {
	ClosureID           string
	TenantID            string
	ClosedAt            time.Time
	WindowStart         time.Time
	SalesTotal          decimal.Decimal
	ExpensesTotal       decimal.Decimal
	SystemExpectedTotal decimal.Decimal
	ExpectedByMethod    map[string]decimal.Decimal
	CountedTotal        decimal.Decimal
	CountsByMethod      map[string]decimal.Decimal
	Difference          decimal.Decimal
	Outcome             ClosureOutcome
	Notes               string
	CreatedBy           string
}

// MethodTotal is an aggregate of sales or expenses for one payment method id.
// A nil MethodID groups rows without a method.
type MethodTotal struct {
	MethodID *string
	Total    decimal.Decimal
	Count    int
}

// WindowTotals holds the raw aggregates of a reconciliation window.
type WindowTotals struct {
	Sales    []MethodTotal
	Expenses []MethodTotal
}

// ShiftSummary is the expected cash position of the open window (Start, End].
type ShiftSummary struct {
	WindowStart      time.Time
	WindowEnd        time.Time
	SalesTotal       decimal.Decimal
	ExpensesTotal    decimal.Decimal
	ExpectedByMethod map[string]decimal.Decimal
	ExpectedTotal    decimal.Decimal
	SalesCount       int
	ExpensesCount    int
}

// BuildShiftSummary resolves method ids to names and nets sales against expenses.
func BuildShiftSummary(start, end time.Time, totals WindowTotals, methods []PaymentMethod) ShiftSummary {
	names := make(map[string]string, len(methods))
	for _, m := range methods {
		names[m.MethodID] = m.Name
	}
	fallback := UnassignedMethod
	if cash := CashMethod(methods); cash != nil {
		fallback = cash.Name
	}
	label := func(id *string) string {
		if id == nil {
			return fallback
		}
		if name, ok := names[*id]; ok {
			return name
		}
		return *id
	}

	summary := ShiftSummary{
		WindowStart:      start,
		WindowEnd:        end,
		SalesTotal:       decimal.Zero,
		ExpensesTotal:    decimal.Zero,
		ExpectedByMethod: make(map[string]decimal.Decimal),
	}
	for _, s := range totals.Sales {
		key := label(s.MethodID)
		summary.ExpectedByMethod[key] = summary.ExpectedByMethod[key].Add(s.Total)
		summary.SalesTotal = summary.SalesTotal.Add(s.Total)
		summary.SalesCount += s.Count
	}
	for _, e := range totals.Expenses {
		key := label(e.MethodID)
		summary.ExpectedByMethod[key] = summary.ExpectedByMethod[key].Sub(e.Total)
		summary.ExpensesTotal = summary.ExpensesTotal.Add(e.Total)
		summary.ExpensesCount += e.Count
	}
	summary.ExpectedTotal = summary.SalesTotal.Sub(summary.ExpensesTotal)
	return summary
}

// SumCounts totals the per-method counted amounts.
func SumCounts(counts map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range counts {
		total = total.Add(v)
	}
	return total
}
