package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// RateProvider supplies the current base to local rate.
// Failures wrap apperrors.ErrUpstreamUnavailable.
type RateProvider interface {
	CurrentRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (rate decimal.Decimal, fromCache bool, err error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetCurrentRate returns the rate for the tenant's currency pair, falling back when the source fails.
	GetCurrentRate(ctx context.Context, tenantID string) (*domain.RateQuote, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// RecordExchangeRate persists a new exchange rate and invalidates the cached one.
	RecordExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
