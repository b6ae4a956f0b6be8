package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func latestClosure(st *state, tenantID string) (*domain.CashClosure, error) {
	var latest *domain.CashClosure
	for i := range st.closures {
		c := st.closures[i]
		if c.TenantID != tenantID {
			continue
		}
		if latest == nil || c.ClosedAt.After(latest.ClosedAt) {
			latest = &c
		}
	}
	if latest == nil {
		return nil, apperrors.NewNotFoundError("no closure for tenant " + tenantID)
	}
	return cloneClosure(*latest), nil
}

func cloneClosure(c domain.CashClosure) *domain.CashClosure {
	c.ExpectedByMethod = maps.Clone(c.ExpectedByMethod)
	c.CountsByMethod = maps.Clone(c.CountsByMethod)
	return &c
}

func (s *Store) FindLatestClosure(_ context.Context, tenantID string) (*domain.CashClosure, error) {
	var out *domain.CashClosure
	err := s.read(func(st *state) error {
		c, err := latestClosure(st, tenantID)
		out = c
		return err
	})
	return out, err
}

func (s *Store) FindLatestClosureInTx(_ context.Context, tx pgx.Tx, tenantID string) (*domain.CashClosure, error) {
	var out *domain.CashClosure
	err := s.write(tx, func(st *state) error {
		c, err := latestClosure(st, tenantID)
		out = c
		return err
	})
	return out, err
}

type methodBucket struct {
	id    string
	isNil bool
}

func bucketOf(id *string) methodBucket {
	if id == nil {
		return methodBucket{isNil: true}
	}
	return methodBucket{id: *id}
}

func collect(acc map[methodBucket]*domain.MethodTotal, id *string, amount decimal.Decimal) {
	key := bucketOf(id)
	t, ok := acc[key]
	if !ok {
		t = &domain.MethodTotal{Total: decimal.Zero}
		if id != nil {
			methodID := *id
			t.MethodID = &methodID
		}
		acc[key] = t
	}
	t.Total = t.Total.Add(amount)
	t.Count++
}

func flatten(acc map[methodBucket]*domain.MethodTotal) []domain.MethodTotal {
	keys := slices.SortedFunc(maps.Keys(acc), func(a, b methodBucket) int {
		switch {
		case a.isNil != b.isNil:
			if a.isNil {
				return 1
			}
			return -1
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	out := make([]domain.MethodTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, *acc[k])
	}
	return out
}

func sumWindow(st *state, tenantID string, start, end time.Time) domain.WindowTotals {
	inWindow := func(at time.Time) bool { return at.After(start) && !at.After(end) }

	sales := map[methodBucket]*domain.MethodTotal{}
	for _, sale := range st.sales {
		if sale.TenantID == tenantID && inWindow(sale.SoldAt) {
			id := sale.PaymentMethodID
			collect(sales, &id, sale.Total)
		}
	}
	expenses := map[methodBucket]*domain.MethodTotal{}
	for _, e := range st.expenses {
		if e.TenantID == tenantID && inWindow(e.SpentAt) {
			collect(expenses, e.PaymentMethodID, e.Amount)
		}
	}
	return domain.WindowTotals{Sales: flatten(sales), Expenses: flatten(expenses)}
}

func (s *Store) SumWindow(_ context.Context, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	var out domain.WindowTotals
	_ = s.read(func(st *state) error {
		out = sumWindow(st, tenantID, start, end)
		return nil
	})
	return out, nil
}

func (s *Store) SumWindowInTx(_ context.Context, tx pgx.Tx, tenantID string, start, end time.Time) (domain.WindowTotals, error) {
	var out domain.WindowTotals
	err := s.write(tx, func(st *state) error {
		out = sumWindow(st, tenantID, start, end)
		return nil
	})
	return out, err
}

func (s *Store) SaveClosureInTx(_ context.Context, tx pgx.Tx, closure domain.CashClosure) error {
	return s.write(tx, func(st *state) error {
		for _, c := range st.closures {
			if c.TenantID == closure.TenantID && c.WindowStart.Equal(closure.WindowStart) {
				return apperrors.NewConflictError("window already closed")
			}
		}
		st.closures = append(st.closures, *cloneClosure(closure))
		return nil
	})
}

func (s *Store) FindClosureByID(_ context.Context, tenantID, closureID string) (*domain.CashClosure, error) {
	var out *domain.CashClosure
	err := s.read(func(st *state) error {
		for _, c := range st.closures {
			if c.TenantID == tenantID && c.ClosureID == closureID {
				out = cloneClosure(c)
				return nil
			}
		}
		return apperrors.NewNotFoundError("closure " + closureID + " not found")
	})
	return out, err
}

func (s *Store) ListClosures(_ context.Context, tenantID string, limit, offset int) ([]domain.CashClosure, int, error) {
	var all []domain.CashClosure
	_ = s.read(func(st *state) error {
		for _, c := range st.closures {
			if c.TenantID == tenantID {
				all = append(all, *cloneClosure(c))
			}
		}
		return nil
	})
	slices.SortStableFunc(all, func(a, b domain.CashClosure) int {
		return b.ClosedAt.Compare(a.ClosedAt)
	})

	total := len(all)
	page := []domain.CashClosure{}
	if offset < total {
		end := min(offset+limit, total)
		page = append(page, all[offset:end]...)
	}
	return page, total, nil
}
