package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPair is the lookup key of exchange_rates. Codes are stored upper case.
type CurrencyPair struct {
	FromCurrencyCode string `db:"from_currency_code"`
	ToCurrencyCode   string `db:"to_currency_code"`
}

func NewCurrencyPair(from, to string) CurrencyPair {
	return CurrencyPair{
		FromCurrencyCode: strings.ToUpper(strings.TrimSpace(from)),
		ToCurrencyCode:   strings.ToUpper(strings.TrimSpace(to)),
	}
}

// Inverse swaps the direction of the pair.
func (p CurrencyPair) Inverse() CurrencyPair {
	return CurrencyPair{FromCurrencyCode: p.ToCurrencyCode, ToCurrencyCode: p.FromCurrencyCode}
}

// Identity reports whether both sides are the same currency.
func (p CurrencyPair) Identity() bool {
	return p.FromCurrencyCode == p.ToCurrencyCode
}

func (p CurrencyPair) String() string {
	return p.FromCurrencyCode + " to " + p.ToCurrencyCode
}

// ExchangeRate is one row of exchange_rates; the pair and date_effective are unique together.
type ExchangeRate struct {
	ExchangeRateID string `db:"exchange_rate_id"`
	CurrencyPair
	Rate          decimal.Decimal `db:"rate"`
	DateEffective time.Time       `db:"date_effective"`
	AuditFields
}
