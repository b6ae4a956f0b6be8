package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CloseShiftRequest carries the cashier's physical count keyed by payment method name.
type CloseShiftRequest struct {
	CountsByMethod map[string]decimal.Decimal `json:"countsByMethod" binding:"dive,gte=0"`
	Notes          string                     `json:"notes"`
}

// ListClosuresParams defines query parameters for listing closures.
type ListClosuresParams struct {
	Page     int `form:"page,default=1" binding:"gte=1"`
	PageSize int `form:"pageSize,default=20" binding:"gte=1,lte=100"`
}

// ShiftSummaryResponse is the expected cash position of the open window.
type ShiftSummaryResponse struct {
	WindowStart          time.Time                  `json:"windowStart"`
	WindowEnd            time.Time                  `json:"windowEnd"`
	SalesTotal           decimal.Decimal            `json:"salesTotal"`
	ExpensesTotal        decimal.Decimal            `json:"expensesTotal"`
	ExpectedCashByMethod map[string]decimal.Decimal `json:"expectedCashByMethod"`
	ExpectedTotal        decimal.Decimal            `json:"expectedTotal"`
	SalesCount           int                        `json:"salesCount"`
	ExpensesCount        int                        `json:"expensesCount"`
}

// ToShiftSummaryResponse converts a domain.ShiftSummary
func ToShiftSummaryResponse(s *domain.ShiftSummary) ShiftSummaryResponse {
	return ShiftSummaryResponse{
		WindowStart:          s.WindowStart,
		WindowEnd:            s.WindowEnd,
		SalesTotal:           s.SalesTotal,
		ExpensesTotal:        s.ExpensesTotal,
		ExpectedCashByMethod: s.ExpectedByMethod,
		ExpectedTotal:        s.ExpectedTotal,
		SalesCount:           s.SalesCount,
		ExpensesCount:        s.ExpensesCount,
	}
}

// CashClosureResponse defines the data returned for a closure.
type CashClosureResponse struct {
	ClosureID           string                     `json:"closureID"`
	ClosedAt            time.Time                  `json:"closedAt"`
	WindowStart         time.Time                  `json:"windowStart"`
	SalesTotal          decimal.Decimal            `json:"salesTotal"`
	ExpensesTotal       decimal.Decimal            `json:"expensesTotal"`
	SystemExpectedTotal decimal.Decimal            `json:"systemExpectedTotal"`
	ExpectedByMethod    map[string]decimal.Decimal `json:"expectedByMethod"`
	CountedTotal        decimal.Decimal            `json:"countedTotal"`
	CountsByMethod      map[string]decimal.Decimal `json:"countsByMethod"`
	Difference          decimal.Decimal            `json:"difference"`
	Outcome             domain.ClosureOutcome      `json:"outcome"`
	Notes               string                     `json:"notes"`
	CreatedBy           string                     `json:"createdBy"`
}

// ToCashClosureResponse converts a domain.CashClosure
func ToCashClosureResponse(c *domain.CashClosure) CashClosureResponse {
	return CashClosureResponse{
		ClosureID:           c.ClosureID,
		ClosedAt:            c.ClosedAt,
		WindowStart:         c.WindowStart,
		SalesTotal:          c.SalesTotal,
		ExpensesTotal:       c.ExpensesTotal,
		SystemExpectedTotal: c.SystemExpectedTotal,
		ExpectedByMethod:    c.ExpectedByMethod,
		CountedTotal:        c.CountedTotal,
		CountsByMethod:      c.CountsByMethod,
		Difference:          c.Difference,
		Outcome:             c.Outcome,
		Notes:               c.Notes,
		CreatedBy:           c.CreatedBy,
	}
}

// ListClosuresResponse is one page of closures.
type ListClosuresResponse struct {
	Closures []CashClosureResponse `json:"closures"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
	Total    int                   `json:"total"`
}
