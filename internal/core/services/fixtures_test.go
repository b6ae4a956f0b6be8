package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/internal/repositories/cache"
	"github.com/SscSPs/pos_ledger/internal/repositories/memory"
)

const (
	tenantID   = "tenant-1"
	otherID    = "tenant-2"
	cashID     = "m-cash"
	cardID     = "m-card"
	userID     = "clerk-1"
	productID  = "p-flour"
	storedRate = 40
)

var t0 = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

// testClock is a settable clock shared by every service of a fixture.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ledgerSuite runs services against a seeded in-memory store.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	clock *testClock
	store *memory.Store
	svc   *portssvc.ServiceContainer
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &testClock{now: t0}
	s.store = memory.New()

	s.store.SeedTenant(domain.Tenant{
		TenantID:      tenantID,
		Name:          "Bodega Central",
		BaseCurrency:  "USD",
		LocalCurrency: "VES",
		CreatedAt:     t0.Add(-time.Hour),
	},
		domain.PaymentMethod{MethodID: cashID, Name: "Efectivo", IsCash: true, Position: 0},
		domain.PaymentMethod{MethodID: cardID, Name: "Tarjeta", Position: 1},
	)
	s.store.SeedTenant(domain.Tenant{
		TenantID:      otherID,
		Name:          "Otra Tienda",
		BaseCurrency:  "USD",
		LocalCurrency: "VES",
		CreatedAt:     t0.Add(-time.Hour),
	},
		domain.PaymentMethod{MethodID: "other-cash", Name: "Efectivo", IsCash: true},
	)
	s.store.SeedProduct(domain.Product{ProductID: productID, TenantID: tenantID, Name: "Harina", Stock: decimal.NewFromInt(50)})
	s.Require().NoError(s.store.SaveExchangeRate(s.ctx, domain.ExchangeRate{
		ExchangeRateID:   "rate-1",
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "VES",
		Rate:             decimal.NewFromInt(storedRate),
		DateEffective:    t0.Truncate(24 * time.Hour),
	}))

	s.svc = services.NewServiceContainer(s.cfg(), s.store.Provider(cache.NoopRateCache{}), services.WithClock(s.clock.Now))
}

func (s *ledgerSuite) cfg() *config.Config {
	return &config.Config{FallbackExchangeRate: decimal.NewFromInt(36)}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func receivable(name, amount string) dto.CreateDebtRequest {
	return dto.CreateDebtRequest{
		Direction:        domain.Receivable,
		CounterpartyName: name,
		Amount:           dec(amount),
	}
}

func payable(name, amount string) dto.CreateDebtRequest {
	return dto.CreateDebtRequest{
		Direction:        domain.Payable,
		CounterpartyName: name,
		Amount:           dec(amount),
	}
}

func pay(amount string) dto.ApplyPaymentRequest {
	return dto.ApplyPaymentRequest{PaymentAmount: dec(amount)}
}

func strPtr(s string) *string {
	return &s
}

// windowTotals aggregates the fixture tenant's sales and expenses since it was created.
func (s *ledgerSuite) windowTotals() domain.WindowTotals {
	totals, err := s.store.SumWindow(s.ctx, tenantID, t0.Add(-time.Hour), s.clock.Now())
	s.Require().NoError(err)
	return totals
}

func countOf(totals []domain.MethodTotal) int {
	n := 0
	for _, t := range totals {
		n += t.Count
	}
	return n
}
