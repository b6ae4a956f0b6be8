package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func (s *Store) FindTenantByID(_ context.Context, tenantID string) (*domain.Tenant, error) {
	var out *domain.Tenant
	err := s.read(func(st *state) error {
		t, ok := st.tenants[tenantID]
		if !ok {
			return apperrors.NewNotFoundError("tenant " + tenantID + " not found")
		}
		out = &t
		return nil
	})
	return out, err
}

func (s *Store) LockTenantInTx(_ context.Context, tx pgx.Tx, tenantID string) (*domain.Tenant, error) {
	var out *domain.Tenant
	err := s.write(tx, func(st *state) error {
		t, ok := st.tenants[tenantID]
		if !ok {
			return apperrors.NewNotFoundError("tenant " + tenantID + " not found")
		}
		out = &t
		return nil
	})
	return out, err
}

// ShareLockTenantInTx only checks the tenant exists; transactions are already serialized.
func (s *Store) ShareLockTenantInTx(_ context.Context, tx pgx.Tx, tenantID string) error {
	return s.write(tx, func(st *state) error {
		if _, ok := st.tenants[tenantID]; !ok {
			return apperrors.NewNotFoundError("tenant " + tenantID + " not found")
		}
		return nil
	})
}

func (s *Store) ListPaymentMethods(_ context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	_ = s.read(func(st *state) error {
		out = slices.Clone(st.methods[tenantID])
		return nil
	})
	if out == nil {
		out = []domain.PaymentMethod{}
	}
	return out, nil
}

func (s *Store) ListPaymentMethodsInTx(ctx context.Context, tx pgx.Tx, tenantID string) ([]domain.PaymentMethod, error) {
	if _, err := asMemTx(tx); err != nil {
		return nil, err
	}
	return s.ListPaymentMethods(ctx, tenantID)
}

func (s *Store) SavePaymentMethod(_ context.Context, method domain.PaymentMethod) error {
	return s.autocommit(func(st *state) error {
		if _, ok := st.tenants[method.TenantID]; !ok {
			return apperrors.NewNotFoundError("tenant " + method.TenantID + " not found")
		}
		for _, m := range st.methods[method.TenantID] {
			if m.Name == method.Name || m.MethodID == method.MethodID {
				return apperrors.NewConflictError("payment method " + method.Name + " already exists")
			}
		}
		st.methods[method.TenantID] = append(st.methods[method.TenantID], method)
		sortMethods(st.methods[method.TenantID])
		return nil
	})
}

func (s *Store) adjustStock(tx pgx.Tx, tenantID, productID string, delta decimal.Decimal) error {
	return s.write(tx, func(st *state) error {
		key := productKey(tenantID, productID)
		p, ok := st.products[key]
		if !ok {
			return fmt.Errorf("%w: unknown product %s", apperrors.ErrValidation, productID)
		}
		p.Stock = p.Stock.Add(delta)
		st.products[key] = p
		return nil
	})
}

func (s *Store) DecrementStockInTx(_ context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	return s.adjustStock(tx, tenantID, productID, quantity.Neg())
}

func (s *Store) RestoreStockInTx(_ context.Context, tx pgx.Tx, tenantID, productID string, quantity decimal.Decimal) error {
	return s.adjustStock(tx, tenantID, productID, quantity)
}
