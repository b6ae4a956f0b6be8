package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func (s *Store) FindDebtByID(_ context.Context, tenantID, debtID string) (*domain.Debt, error) {
	var out *domain.Debt
	err := s.read(func(st *state) error {
		d, ok := st.debts[debtID]
		if !ok || d.TenantID != tenantID {
			return apperrors.NewNotFoundError("debt " + debtID + " not found")
		}
		c := cloneDebt(d)
		out = &c
		return nil
	})
	return out, err
}

func (s *Store) ListDebts(_ context.Context, tenantID string, filter domain.DebtFilter) ([]domain.Debt, error) {
	debts := []domain.Debt{}
	_ = s.read(func(st *state) error {
		for _, d := range st.debts {
			if d.TenantID != tenantID {
				continue
			}
			if filter.Direction != nil && d.Direction != *filter.Direction {
				continue
			}
			if filter.Status != nil && d.Status != *filter.Status {
				continue
			}
			debts = append(debts, cloneDebt(d))
		}
		return nil
	})
	slices.SortFunc(debts, func(a, b domain.Debt) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.DebtID < b.DebtID:
			return -1
		case a.DebtID > b.DebtID:
			return 1
		}
		return 0
	})
	return debts, nil
}

func (s *Store) ListDebtPayments(_ context.Context, tenantID, debtID string) ([]domain.DebtPayment, error) {
	payments := []domain.DebtPayment{}
	_ = s.read(func(st *state) error {
		for _, p := range st.payments {
			if p.TenantID == tenantID && p.DebtID == debtID {
				payments = append(payments, p)
			}
		}
		return nil
	})
	slices.SortStableFunc(payments, func(a, b domain.DebtPayment) int {
		return a.PaidAt.Compare(b.PaidAt)
	})
	return payments, nil
}

// LockCounterpartyInTx is satisfied by the store-wide transaction lock.
func (s *Store) LockCounterpartyInTx(_ context.Context, tx pgx.Tx, _ string, _ domain.DebtDirection, _ string) error {
	_, err := asMemTx(tx)
	return err
}

func (s *Store) FindOpenReceivableForUpdate(_ context.Context, tx pgx.Tx, tenantID, normalizedName string) (*domain.Debt, error) {
	var out *domain.Debt
	err := s.write(tx, func(st *state) error {
		d := openReceivable(st, tenantID, normalizedName)
		if d == nil {
			return apperrors.NewNotFoundError("no open receivable for counterparty")
		}
		c := cloneDebt(*d)
		out = &c
		return nil
	})
	return out, err
}

func openReceivable(st *state, tenantID, normalizedName string) *domain.Debt {
	var found *domain.Debt
	for _, d := range st.debts {
		if d.TenantID != tenantID || d.Direction != domain.Receivable || d.Status != domain.DebtPending {
			continue
		}
		if domain.NormalizeCounterparty(d.CounterpartyName) != normalizedName {
			continue
		}
		if found == nil || d.CreatedAt.Before(found.CreatedAt) {
			d := d
			found = &d
		}
	}
	return found
}

func (s *Store) FindDebtByIDForUpdate(_ context.Context, tx pgx.Tx, tenantID, debtID string) (*domain.Debt, error) {
	var out *domain.Debt
	err := s.write(tx, func(st *state) error {
		d, ok := st.debts[debtID]
		if !ok || d.TenantID != tenantID {
			return apperrors.NewNotFoundError("debt " + debtID + " not found")
		}
		c := cloneDebt(d)
		out = &c
		return nil
	})
	return out, err
}

func (s *Store) SaveDebtInTx(_ context.Context, tx pgx.Tx, debt domain.Debt) error {
	return s.write(tx, func(st *state) error {
		if _, exists := st.debts[debt.DebtID]; exists {
			return apperrors.NewConflictError("debt " + debt.DebtID + " already exists")
		}
		if debt.Direction == domain.Receivable && debt.Status == domain.DebtPending &&
			openReceivable(st, debt.TenantID, domain.NormalizeCounterparty(debt.CounterpartyName)) != nil {
			return apperrors.NewConflictError("open receivable already exists for counterparty")
		}
		st.debts[debt.DebtID] = cloneDebt(debt)
		return nil
	})
}

func (s *Store) UpdateDebtInTx(_ context.Context, tx pgx.Tx, debt domain.Debt) error {
	return s.write(tx, func(st *state) error {
		current, ok := st.debts[debt.DebtID]
		if !ok || current.TenantID != debt.TenantID {
			return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debt.DebtID)
		}
		debt.Direction = current.Direction
		debt.CreatedAt = current.CreatedAt
		debt.CreatedBy = current.CreatedBy
		st.debts[debt.DebtID] = cloneDebt(debt)
		return nil
	})
}

func (s *Store) SaveDebtPaymentInTx(_ context.Context, tx pgx.Tx, payment domain.DebtPayment) error {
	return s.write(tx, func(st *state) error {
		if _, ok := st.debts[payment.DebtID]; !ok {
			return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, payment.DebtID)
		}
		st.payments = append(st.payments, payment)
		return nil
	})
}

// DeleteDebtInTx removes the debt and its payments, and detaches linked sales and expenses.
func (s *Store) DeleteDebtInTx(_ context.Context, tx pgx.Tx, tenantID, debtID string) error {
	return s.write(tx, func(st *state) error {
		d, ok := st.debts[debtID]
		if !ok || d.TenantID != tenantID {
			return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtID)
		}
		delete(st.debts, debtID)
		st.payments = slices.DeleteFunc(st.payments, func(p domain.DebtPayment) bool { return p.DebtID == debtID })
		for i := range st.sales {
			if st.sales[i].DebtID != nil && *st.sales[i].DebtID == debtID {
				st.sales[i].DebtID = nil
			}
		}
		for i := range st.expenses {
			if st.expenses[i].DebtID != nil && *st.expenses[i].DebtID == debtID {
				st.expenses[i].DebtID = nil
			}
		}
		return nil
	})
}
