package pgsql_test

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/internal/repositories/cache"
	"github.com/SscSPs/pos_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_ledger/pkg/database"
)

// PostgresSuite runs the services against a real database. Set TEST_DATABASE_URL to enable it.
type PostgresSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	svc      *portssvc.ServiceContainer
	tenantID string
	cashID   string
}

func TestPostgres(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	url := os.Getenv("TEST_DATABASE_URL")

	migrationDB, err := sql.Open("pgx", url)
	s.Require().NoError(err)
	defer migrationDB.Close()
	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	s.Require().NoError(err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	s.Require().NoError(err)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		s.Require().NoError(err)
	}

	s.pool, err = database.NewPgxPool(s.ctx, url, true, nil)
	s.Require().NoError(err)

	cfg := &config.Config{FallbackExchangeRate: decimal.NewFromInt(36)}
	s.svc = services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(s.pool, cache.NoopRateCache{}))
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		_, _ = s.pool.Exec(s.ctx, `DELETE FROM tenants WHERE tenant_id LIKE 'it-%'`)
		database.ClosePgxPool(s.pool, nil)
	}
}

// SetupTest gives every test its own tenant so they never share a drawer window.
func (s *PostgresSuite) SetupTest() {
	s.tenantID = "it-" + uuid.NewString()
	s.cashID = uuid.NewString()
	_, err := s.pool.Exec(s.ctx,
		`INSERT INTO tenants (tenant_id, name, base_currency, local_currency, created_at) VALUES ($1, 'Integration', 'USD', 'VES', NOW() - INTERVAL '1 hour')`,
		s.tenantID)
	s.Require().NoError(err)
	_, err = s.pool.Exec(s.ctx,
		`INSERT INTO payment_methods (method_id, tenant_id, name, is_cash, position) VALUES ($1, $2, 'Efectivo', TRUE, 0)`,
		s.cashID, s.tenantID)
	s.Require().NoError(err)
}

func (s *PostgresSuite) receivable(name string, amount int64) *domain.Debt {
	debt, _, err := s.svc.Debt.CreateDebt(s.ctx, s.tenantID, dto.CreateDebtRequest{
		Direction:        domain.Receivable,
		CounterpartyName: name,
		Amount:           decimal.NewFromInt(amount),
	}, "user-1")
	s.Require().NoError(err)
	return debt
}

func (s *PostgresSuite) TestReceivableMergesThenSettles() {
	first := s.receivable("Maria", 5)
	merged := s.receivable("  maria ", 5)
	s.Equal(first.DebtID, merged.DebtID)
	s.True(merged.TotalAmount.Equal(decimal.NewFromInt(10)))

	result, err := s.svc.Payment.ApplyPayment(s.ctx, s.tenantID, first.DebtID, dto.ApplyPaymentRequest{
		PaymentAmount: decimal.NewFromInt(10),
	}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.DebtSettled, result.Debt.Status)
	s.Require().NotNil(result.Sale)
	s.Equal(s.cashID, result.Sale.PaymentMethodID)
	s.True(result.RateFallback)
	s.True(result.Sale.TotalLocal.Equal(decimal.NewFromInt(360)))

	_, err = s.svc.Payment.ApplyPayment(s.ctx, s.tenantID, first.DebtID, dto.ApplyPaymentRequest{
		PaymentAmount: decimal.NewFromInt(1),
	}, "user-1")
	s.ErrorIs(err, domain.ErrDebtSettled)
}

func (s *PostgresSuite) TestConcurrentPaymentsSettleOnce() {
	debt := s.receivable("Juan", 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.svc.Payment.ApplyPayment(s.ctx, s.tenantID, debt.DebtID, dto.ApplyPaymentRequest{
				PaymentAmount: decimal.NewFromInt(10),
			}, "user-1")
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			s.ErrorIs(err, apperrors.ErrConflict)
			failures++
		}
	}
	s.Equal(1, failures)

	var sales int
	s.Require().NoError(s.pool.QueryRow(s.ctx, `SELECT COUNT(*) FROM sales WHERE tenant_id = $1 AND debt_id = $2`, s.tenantID, debt.DebtID).Scan(&sales))
	s.Equal(1, sales)
}

func (s *PostgresSuite) TestCloseShiftReconcilesWindow() {
	debt := s.receivable("Ana", 120)
	_, err := s.svc.Payment.ApplyPayment(s.ctx, s.tenantID, debt.DebtID, dto.ApplyPaymentRequest{
		PaymentAmount: decimal.NewFromInt(120),
	}, "user-1")
	s.Require().NoError(err)
	_, err = s.svc.Expense.CreateExpense(s.ctx, s.tenantID, dto.CreateExpenseRequest{
		Description: "Ice",
		Amount:      decimal.NewFromInt(20),
	}, "user-1")
	s.Require().NoError(err)

	summary, err := s.svc.CashClosure.GetOpenShiftSummary(s.ctx, s.tenantID)
	s.Require().NoError(err)
	s.True(summary.ExpectedTotal.Equal(decimal.NewFromInt(100)), summary.ExpectedTotal.String())

	closure, err := s.svc.CashClosure.CloseShift(s.ctx, s.tenantID, dto.CloseShiftRequest{
		CountsByMethod: map[string]decimal.Decimal{"Efectivo": decimal.NewFromInt(95)},
	}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.OutcomeShortage, closure.Outcome)
	s.True(closure.Difference.Equal(decimal.NewFromInt(-5)))

	// The next window starts empty.
	time.Sleep(time.Millisecond)
	summary, err = s.svc.CashClosure.GetOpenShiftSummary(s.ctx, s.tenantID)
	s.Require().NoError(err)
	s.True(summary.ExpectedTotal.IsZero())
	s.Equal(0, summary.SalesCount)
}

func (s *PostgresSuite) TestOtherTenantSeesNothing() {
	debt := s.receivable("Pedro", 3)

	_, err := s.svc.Debt.GetDebtByID(s.ctx, "demo", debt.DebtID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PostgresSuite) TestConcurrentMergesKeepOneOpenDebt() {
	const writers = 5
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = s.svc.Debt.CreateDebt(s.ctx, s.tenantID, dto.CreateDebtRequest{
				Direction:        domain.Receivable,
				CounterpartyName: "Rosa",
				Amount:           decimal.NewFromInt(2),
			}, "user-1")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		s.NoError(err)
	}

	status := domain.DebtPending
	debts, err := s.svc.Debt.ListDebts(s.ctx, s.tenantID, domain.DebtFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(debts, 1)
	s.True(debts[0].TotalAmount.Equal(decimal.NewFromInt(2*writers)), debts[0].TotalAmount.String())
}

func (s *PostgresSuite) TestConcurrentClosesNeverOverlap() {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.svc.CashClosure.CloseShift(s.ctx, s.tenantID, dto.CloseShiftRequest{}, "user-1")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		s.NoError(err)
	}

	page, err := s.svc.CashClosure.ListClosures(s.ctx, s.tenantID, dto.ListClosuresParams{})
	s.Require().NoError(err)
	s.Require().Len(page.Closures, 2)
	newest, oldest := page.Closures[0], page.Closures[1]
	s.True(newest.WindowStart.Equal(oldest.ClosedAt), "window %s starts at %s", newest.WindowStart, oldest.ClosedAt)
	s.True(newest.ClosedAt.After(oldest.ClosedAt))
}

// A payment racing a close is counted by exactly one closure.
func (s *PostgresSuite) TestPaymentRacingCloseIsCountedOnce() {
	debt := s.receivable("Luis", 40)

	var wg sync.WaitGroup
	var payErr, closeErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, payErr = s.svc.Payment.ApplyPayment(s.ctx, s.tenantID, debt.DebtID, dto.ApplyPaymentRequest{
			PaymentAmount: decimal.NewFromInt(40),
		}, "user-1")
	}()
	go func() {
		defer wg.Done()
		_, closeErr = s.svc.CashClosure.CloseShift(s.ctx, s.tenantID, dto.CloseShiftRequest{}, "user-1")
	}()
	wg.Wait()
	s.Require().NoError(payErr)
	s.Require().NoError(closeErr)

	time.Sleep(time.Millisecond)
	_, err := s.svc.CashClosure.CloseShift(s.ctx, s.tenantID, dto.CloseShiftRequest{}, "user-1")
	s.Require().NoError(err)

	page, err := s.svc.CashClosure.ListClosures(s.ctx, s.tenantID, dto.ListClosuresParams{})
	s.Require().NoError(err)
	s.Require().Len(page.Closures, 2)
	counted := page.Closures[0].SalesTotal.Add(page.Closures[1].SalesTotal)
	s.True(counted.Equal(decimal.NewFromInt(40)), "sales counted %s", counted)
}
