// Package memory is a process-local implementation of the repository ports, used for
// development without Postgres and by service tests.
package memory

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// DemoTenantID is the tenant created by SeedDemo.
const DemoTenantID = "demo"

type state struct {
	tenants  map[string]domain.Tenant
	methods  map[string][]domain.PaymentMethod
	products map[string]domain.Product
	debts    map[string]domain.Debt
	payments []domain.DebtPayment
	sales    []domain.Sale
	expenses []domain.Expense
	closures []domain.CashClosure
	rates    []domain.ExchangeRate
}

func newState() state {
	return state{
		tenants:  make(map[string]domain.Tenant),
		methods:  make(map[string][]domain.PaymentMethod),
		products: make(map[string]domain.Product),
		debts:    make(map[string]domain.Debt),
	}
}

func (st state) clone() state {
	c := state{
		tenants:  maps.Clone(st.tenants),
		methods:  make(map[string][]domain.PaymentMethod, len(st.methods)),
		products: maps.Clone(st.products),
		debts:    make(map[string]domain.Debt, len(st.debts)),
		payments: slices.Clone(st.payments),
		sales:    slices.Clone(st.sales),
		expenses: slices.Clone(st.expenses),
		closures: slices.Clone(st.closures),
		rates:    slices.Clone(st.rates),
	}
	for k, v := range st.methods {
		c.methods[k] = slices.Clone(v)
	}
	for k, v := range st.debts {
		c.debts[k] = cloneDebt(v)
	}
	return c
}

func cloneDebt(d domain.Debt) domain.Debt {
	d.LineItems = slices.Clone(d.LineItems)
	d.NoteLog = slices.Clone(d.NoteLog)
	if d.LineItems == nil {
		d.LineItems = []domain.DebtLineItem{}
	}
	if d.NoteLog == nil {
		d.NoteLog = []domain.DebtNote{}
	}
	return d
}

// Store keeps every table in memory. Transactions are serialized by txMu and undone by
// restoring the snapshot taken in Begin. Reads outside a transaction may observe
// uncommitted writes.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   state
}

// memTx stands in for a pgx.Tx. Only the store itself ever inspects it.
type memTx struct {
	pgx.Tx
	snapshot state
	done     bool
}

var (
	_ portsrepo.TransactionManager           = (*Store)(nil)
	_ portsrepo.DebtRepositoryFacade         = (*Store)(nil)
	_ portsrepo.SaleRepositoryFacade         = (*Store)(nil)
	_ portsrepo.ExpenseRepositoryFacade      = (*Store)(nil)
	_ portsrepo.CashClosureRepositoryFacade  = (*Store)(nil)
	_ portsrepo.TenantRepositoryFacade       = (*Store)(nil)
	_ portsrepo.InventoryAdjuster            = (*Store)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*Store)(nil)
)

// New returns an empty store.
func New() *Store {
	return &Store{st: newState()}
}

// Provider exposes the store through every repository port.
func (s *Store) Provider(rateCache portsrepo.RateCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:        s,
		DebtRepo:         s,
		SaleRepo:         s,
		ExpenseRepo:      s,
		ClosureRepo:      s,
		TenantRepo:       s,
		InventoryRepo:    s,
		ExchangeRateRepo: s,
		RateCache:        rateCache,
	}
}

func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	s.txMu.Lock()
	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()
	return &memTx{snapshot: snapshot}, nil
}

func (s *Store) Commit(_ context.Context, tx pgx.Tx) error {
	mtx, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if mtx.done {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", pgx.ErrTxClosed)
	}
	mtx.done = true
	s.txMu.Unlock()
	return nil
}

func (s *Store) Rollback(_ context.Context, tx pgx.Tx) error {
	mtx, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if mtx.done {
		return nil
	}
	mtx.done = true
	s.mu.Lock()
	s.st = mtx.snapshot
	s.mu.Unlock()
	s.txMu.Unlock()
	return nil
}

func asMemTx(tx pgx.Tx) (*memTx, error) {
	mtx, ok := tx.(*memTx)
	if !ok || mtx == nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "foreign transaction", errors.New("not a memory transaction"))
	}
	return mtx, nil
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.st)
}

func (s *Store) write(tx pgx.Tx, fn func(st *state) error) error {
	mtx, err := asMemTx(tx)
	if err != nil {
		return err
	}
	if mtx.done {
		return apperrors.NewAppError(http.StatusInternalServerError, "transaction closed", pgx.ErrTxClosed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

// autocommit runs a single write as its own transaction.
func (s *Store) autocommit(fn func(st *state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

// SeedTenant registers a tenant and its payment methods.
func (s *Store) SeedTenant(tenant domain.Tenant, methods ...domain.PaymentMethod) {
	_ = s.autocommit(func(st *state) error {
		st.tenants[tenant.TenantID] = tenant
		for i := range methods {
			methods[i].TenantID = tenant.TenantID
		}
		st.methods[tenant.TenantID] = append(st.methods[tenant.TenantID], methods...)
		sortMethods(st.methods[tenant.TenantID])
		return nil
	})
}

// SeedProduct registers a stock-bearing product.
func (s *Store) SeedProduct(product domain.Product) {
	_ = s.autocommit(func(st *state) error {
		st.products[productKey(product.TenantID, product.ProductID)] = product
		return nil
	})
}

// SeedDemo creates the demo tenant with a cash drawer and a transfer method.
func (s *Store) SeedDemo(now time.Time) {
	s.SeedTenant(domain.Tenant{
		TenantID:      DemoTenantID,
		Name:          "Demo Store",
		BaseCurrency:  "USD",
		LocalCurrency: "VES",
		CreatedAt:     now,
	},
		domain.PaymentMethod{MethodID: "demo-cash", Name: "Efectivo", IsCash: true, Position: 0},
		domain.PaymentMethod{MethodID: "demo-transfer", Name: "Transferencia", Position: 1},
	)
	s.SeedProduct(domain.Product{ProductID: "demo-bread", TenantID: DemoTenantID, Name: "Pan", Stock: decimal.NewFromInt(100)})
}

// Product returns a product snapshot, for inspection.
func (s *Store) Product(tenantID, productID string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.st.products[productKey(tenantID, productID)]
	return p, ok
}

func productKey(tenantID, productID string) string {
	return tenantID + "|" + productID
}

func sortMethods(methods []domain.PaymentMethod) {
	slices.SortStableFunc(methods, func(a, b domain.PaymentMethod) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
}
