package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelCashClosure converts a domain CashClosure to a model CashClosure
func ToModelCashClosure(d domain.CashClosure) models.CashClosure {
	return models.CashClosure{
		ClosureID:           d.ClosureID,
		TenantID:            d.TenantID,
		ClosedAt:            d.ClosedAt,
		WindowStart:         d.WindowStart,
		SalesTotal:          d.SalesTotal,
		ExpensesTotal:       d.ExpensesTotal,
		SystemExpectedTotal: d.SystemExpectedTotal,
		ExpectedByMethod:    d.ExpectedByMethod,
		CountedTotal:        d.CountedTotal,
		CountsByMethod:      d.CountsByMethod,
		Difference:          d.Difference,
		Outcome:             string(d.Outcome),
		Notes:               d.Notes,
		CreatedBy:           d.CreatedBy,
	}
}

// ToDomainCashClosure converts a model CashClosure to a domain CashClosure
func ToDomainCashClosure(m models.CashClosure) domain.CashClosure {
	return domain.CashClosure{
		ClosureID:           m.ClosureID,
		TenantID:            m.TenantID,
		ClosedAt:            utc(m.ClosedAt),
		WindowStart:         utc(m.WindowStart),
		SalesTotal:          m.SalesTotal,
		ExpensesTotal:       m.ExpensesTotal,
		SystemExpectedTotal: m.SystemExpectedTotal,
		ExpectedByMethod:    m.ExpectedByMethod,
		CountedTotal:        m.CountedTotal,
		CountsByMethod:      m.CountsByMethod,
		Difference:          m.Difference,
		Outcome:             domain.ClosureOutcome(m.Outcome),
		Notes:               m.Notes,
		CreatedBy:           m.CreatedBy,
	}
}
