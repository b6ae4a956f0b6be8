package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// cachedRateProvider reads the latest stored rate through the rate cache.
type cachedRateProvider struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	cache    portsrepo.RateCache
}

var _ portssvc.RateProvider = (*cachedRateProvider)(nil)

// NewRateProvider creates a RateProvider backed by the exchange rate table and a cache.
func NewRateProvider(rateRepo portsrepo.ExchangeRateReader, cache portsrepo.RateCache, options ...ServiceOption) portssvc.RateProvider {
	return &cachedRateProvider{
		BaseService: newBaseService(options...),
		rateRepo:    rateRepo,
		cache:       cache,
	}
}

func (p *cachedRateProvider) CurrentRate(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	if p.cache != nil {
		rate, ok, err := p.cache.Get(ctx, from, to)
		if err != nil {
			p.LogWarn(ctx, "Rate cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return rate, true, nil
		}
	}

	stored, err := p.rateRepo.FindLatestExchangeRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: rate %s/%s: %v", apperrors.ErrUpstreamUnavailable, from, to, err)
	}
	if !stored.Rate.IsPositive() {
		return decimal.Zero, false, fmt.Errorf("%w: rate %s/%s is not positive", apperrors.ErrUpstreamUnavailable, from, to)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, from, to, stored.Rate); err != nil {
			p.LogWarn(ctx, "Rate cache write failed", slog.String("error", err.Error()))
		}
	}
	return stored.Rate, false, nil
}

// rateOrFallback never fails: a provider error is logged and the configured rate is used.
func rateOrFallback(ctx context.Context, base *BaseService, provider portssvc.RateProvider, fallback decimal.Decimal, from, to string) domain.RateQuote {
	quote := domain.RateQuote{FromCurrencyCode: from, ToCurrencyCode: to}
	rate, fromCache, err := provider.CurrentRate(ctx, from, to)
	if err != nil {
		base.LogWarn(ctx, "Exchange rate unavailable, using fallback",
			slog.String("error", err.Error()),
			slog.String("from", from),
			slog.String("to", to),
			slog.String("fallback_rate", fallback.String()))
		quote.Rate = fallback
		quote.Fallback = true
		return quote
	}
	quote.Rate = rate
	quote.FromCache = fromCache
	return quote
}

type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	cache        portsrepo.RateCache
	tenantRepo   portsrepo.TenantReader
	provider     portssvc.RateProvider
	fallbackRate decimal.Decimal
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// NewExchangeRateService creates the exchange rate service.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	cache portsrepo.RateCache,
	tenantRepo portsrepo.TenantReader,
	provider portssvc.RateProvider,
	fallbackRate decimal.Decimal,
	options ...ServiceOption,
) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService:  newBaseService(options...),
		rateRepo:     rateRepo,
		cache:        cache,
		tenantRepo:   tenantRepo,
		provider:     provider,
		fallbackRate: fallbackRate,
	}
}

func (s *exchangeRateService) GetCurrentRate(ctx context.Context, tenantID string) (*domain.RateQuote, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load tenant for rate", slog.String("tenant_id", tenantID))
		return nil, err
	}
	quote := rateOrFallback(ctx, &s.BaseService, s.provider, s.fallbackRate, tenant.BaseCurrency, tenant.LocalCurrency)
	return &quote, nil
}

func (s *exchangeRateService) RecordExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrencyCode))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrencyCode))
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrInvalidAmount)
	}
	if len(from) != 3 || len(to) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	now := s.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective.UTC().Truncate(24 * time.Hour),
		AuditFields:      domain.NewAuditFields(now, creatorUserID),
	}
	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to record exchange rate: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, from, to); err != nil {
			s.LogWarn(ctx, "Failed to invalidate cached rate", slog.String("error", err.Error()))
		}
		if err := s.cache.Delete(ctx, to, from); err != nil {
			s.LogWarn(ctx, "Failed to invalidate cached rate", slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Exchange rate recorded",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}
