package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies from a given date.
type ExchangeRate struct {
	ExchangeRateID   string
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
	DateEffective    time.Time
	AuditFields
}

// RateQuote is a rate together with where it came from.
type RateQuote struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
	FromCache        bool
	Fallback         bool
}
