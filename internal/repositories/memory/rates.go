package memory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func (s *Store) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	rate.FromCurrencyCode = strings.ToUpper(rate.FromCurrencyCode)
	rate.ToCurrencyCode = strings.ToUpper(rate.ToCurrencyCode)
	if rate.FromCurrencyCode == rate.ToCurrencyCode {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	return s.autocommit(func(st *state) error {
		for i, existing := range st.rates {
			if existing.FromCurrencyCode == rate.FromCurrencyCode && existing.ToCurrencyCode == rate.ToCurrencyCode &&
				existing.DateEffective.Equal(rate.DateEffective) {
				rate.ExchangeRateID = existing.ExchangeRateID
				rate.CreatedAt = existing.CreatedAt
				rate.CreatedBy = existing.CreatedBy
				st.rates[i] = rate
				return nil
			}
		}
		st.rates = append(st.rates, rate)
		return nil
	})
}

func latestRate(st *state, from, to string) *domain.ExchangeRate {
	var latest *domain.ExchangeRate
	for i := range st.rates {
		r := st.rates[i]
		if r.FromCurrencyCode != from || r.ToCurrencyCode != to {
			continue
		}
		if latest == nil || r.DateEffective.After(latest.DateEffective) {
			latest = &r
		}
	}
	return latest
}

func (s *Store) FindLatestExchangeRate(_ context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(fromCurrencyCode)
	to := strings.ToUpper(toCurrencyCode)
	if from == to {
		return &domain.ExchangeRate{FromCurrencyCode: from, ToCurrencyCode: to, Rate: decimal.NewFromInt(1)}, nil
	}

	var out *domain.ExchangeRate
	err := s.read(func(st *state) error {
		if direct := latestRate(st, from, to); direct != nil {
			out = direct
			return nil
		}
		if inverse := latestRate(st, to, from); inverse != nil && !inverse.Rate.IsZero() {
			inverse.FromCurrencyCode = from
			inverse.ToCurrencyCode = to
			inverse.Rate = decimal.NewFromInt(1).Div(inverse.Rate)
			out = inverse
			return nil
		}
		return apperrors.NewNotFoundError("no exchange rate found for currency pair " + from + " to " + to)
	})
	return out, err
}
