package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func (s *Store) SaveSaleInTx(_ context.Context, tx pgx.Tx, sale domain.Sale) error {
	return s.write(tx, func(st *state) error {
		if sale.DebtID != nil {
			for _, existing := range st.sales {
				if existing.DebtID != nil && *existing.DebtID == *sale.DebtID {
					return apperrors.NewConflictError("sale already recorded for debt " + *sale.DebtID)
				}
			}
		}
		st.sales = append(st.sales, sale)
		return nil
	})
}

func (s *Store) FindSaleByDebtID(_ context.Context, tenantID, debtID string) (*domain.Sale, error) {
	var out *domain.Sale
	err := s.read(func(st *state) error {
		for _, sale := range st.sales {
			if sale.TenantID == tenantID && sale.DebtID != nil && *sale.DebtID == debtID {
				sale := sale
				out = &sale
				return nil
			}
		}
		return apperrors.NewNotFoundError("no sale for debt " + debtID)
	})
	return out, err
}

func (s *Store) SaveExpenseInTx(_ context.Context, tx pgx.Tx, expense domain.Expense) error {
	return s.write(tx, func(st *state) error {
		st.expenses = append(st.expenses, expense)
		return nil
	})
}

func (s *Store) ListExpenses(_ context.Context, tenantID string, from, to *time.Time) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	_ = s.read(func(st *state) error {
		for _, e := range st.expenses {
			if e.TenantID != tenantID {
				continue
			}
			if from != nil && !e.SpentAt.After(*from) {
				continue
			}
			if to != nil && e.SpentAt.After(*to) {
				continue
			}
			expenses = append(expenses, e)
		}
		return nil
	})
	slices.SortStableFunc(expenses, func(a, b domain.Expense) int {
		return b.SpentAt.Compare(a.SpentAt)
	})
	return expenses, nil
}
