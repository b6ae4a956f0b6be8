package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestExchangeRate retrieves the rate with the latest effective date for a pair.
	FindLatestExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// RateCache keeps current rates close to the payment path.
type RateCache interface {
	// Get reports a hit with ok; a miss is not an error.
	Get(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (rate decimal.Decimal, ok bool, err error)
	Set(ctx context.Context, fromCurrencyCode, toCurrencyCode string, rate decimal.Decimal) error
	Delete(ctx context.Context, fromCurrencyCode, toCurrencyCode string) error
}
