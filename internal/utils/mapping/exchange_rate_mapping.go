package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelExchangeRate normalizes the currency codes on the way in.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		CurrencyPair:   models.NewCurrencyPair(d.FromCurrencyCode, d.ToCurrencyCode),
		Rate:           d.Rate,
		DateEffective:  d.DateEffective.UTC(),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		DateEffective:    utc(m.DateEffective),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInverseRate expresses a stored rate for the opposite pair. The caller rejects zero rates.
func ToDomainInverseRate(m models.ExchangeRate) domain.ExchangeRate {
	d := ToDomainExchangeRate(m)
	inverse := m.Inverse()
	d.FromCurrencyCode = inverse.FromCurrencyCode
	d.ToCurrencyCode = inverse.ToCurrencyCode
	d.Rate = oneUnit.Div(m.Rate)
	return d
}
