package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:          d.SaleID,
		TenantID:        d.TenantID,
		Total:           d.Total,
		TotalLocal:      d.TotalLocal,
		ExchangeRate:    d.ExchangeRate,
		PaymentMethodID: d.PaymentMethodID,
		DebtID:          d.DebtID,
		SoldAt:          d.SoldAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:          m.SaleID,
		TenantID:        m.TenantID,
		Total:           m.Total,
		TotalLocal:      m.TotalLocal,
		ExchangeRate:    m.ExchangeRate,
		PaymentMethodID: m.PaymentMethodID,
		DebtID:          m.DebtID,
		SoldAt:          utc(m.SoldAt),
		CreatedBy:       m.CreatedBy,
	}
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:       d.ExpenseID,
		TenantID:        d.TenantID,
		Description:     d.Description,
		Amount:          d.Amount,
		PaymentMethodID: d.PaymentMethodID,
		DebtID:          d.DebtID,
		SpentAt:         d.SpentAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:       m.ExpenseID,
		TenantID:        m.TenantID,
		Description:     m.Description,
		Amount:          m.Amount,
		PaymentMethodID: m.PaymentMethodID,
		DebtID:          m.DebtID,
		SpentAt:         utc(m.SpentAt),
		CreatedBy:       m.CreatedBy,
	}
}
