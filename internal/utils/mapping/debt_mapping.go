package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(d domain.Debt) models.Debt {
	items := make([]models.LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = models.LineItem{
			ProductID:  li.ProductID,
			Name:       li.Name,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice,
			IsWeighted: li.IsWeighted,
			AddedAt:    li.AddedAt,
		}
	}
	notes := make([]models.NoteEntry, len(d.NoteLog))
	for i, n := range d.NoteLog {
		notes[i] = models.NoteEntry{At: n.At, Text: n.Text}
	}
	return models.Debt{
		DebtID:           d.DebtID,
		TenantID:         d.TenantID,
		Direction:        string(d.Direction),
		CounterpartyName: d.CounterpartyName,
		Phone:            d.Phone,
		Note:             d.Note,
		NoteLog:          notes,
		LineItems:        items,
		TotalAmount:      d.TotalAmount,
		AmountPaid:       d.AmountPaid,
		Status:           string(d.Status),
		SettledAt:        d.SettledAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt
func ToDomainDebt(m models.Debt) domain.Debt {
	items := make([]domain.DebtLineItem, len(m.LineItems))
	for i, li := range m.LineItems {
		items[i] = domain.DebtLineItem{
			ProductID:  li.ProductID,
			Name:       li.Name,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice,
			IsWeighted: li.IsWeighted,
			AddedAt:    utc(li.AddedAt),
		}
	}
	notes := make([]domain.DebtNote, len(m.NoteLog))
	for i, n := range m.NoteLog {
		notes[i] = domain.DebtNote{At: utc(n.At), Text: n.Text}
	}
	return domain.Debt{
		DebtID:           m.DebtID,
		TenantID:         m.TenantID,
		Direction:        domain.DebtDirection(m.Direction),
		CounterpartyName: m.CounterpartyName,
		Phone:            m.Phone,
		Note:             m.Note,
		NoteLog:          notes,
		LineItems:        items,
		TotalAmount:      m.TotalAmount,
		AmountPaid:       m.AmountPaid,
		Status:           domain.DebtStatus(m.Status),
		SettledAt:        utcPtr(m.SettledAt),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebts converts a slice of model Debts
func ToDomainDebts(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}

// ToModelDebtPayment converts a domain DebtPayment to a model DebtPayment
func ToModelDebtPayment(d domain.DebtPayment) models.DebtPayment {
	return models.DebtPayment{
		PaymentID:          d.PaymentID,
		DebtID:             d.DebtID,
		TenantID:           d.TenantID,
		Amount:             d.Amount,
		PaymentMethodID:    d.PaymentMethodID,
		DrawFromCashDrawer: d.DrawFromCashDrawer,
		PaidAt:             d.PaidAt,
		CreatedBy:          d.CreatedBy,
	}
}

// ToDomainDebtPayment converts a model DebtPayment to a domain DebtPayment
func ToDomainDebtPayment(m models.DebtPayment) domain.DebtPayment {
	return domain.DebtPayment{
		PaymentID:          m.PaymentID,
		DebtID:             m.DebtID,
		TenantID:           m.TenantID,
		Amount:             m.Amount,
		PaymentMethodID:    m.PaymentMethodID,
		DrawFromCashDrawer: m.DrawFromCashDrawer,
		PaidAt:             utc(m.PaidAt),
		CreatedBy:          m.CreatedBy,
	}
}
