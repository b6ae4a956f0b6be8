package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, replacing any rate for the same pair and effective date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	if m.Identity() {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.DateEffective,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageError(err, "failed to save exchange rate")
	}
	return nil
}

// FindLatestExchangeRate returns the newest rate for the pair. Without one, the newest rate of
// the inverse pair is inverted.
func (r *PgxExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	pair := models.NewCurrencyPair(fromCurrencyCode, toCurrencyCode)
	if pair.Identity() {
		return &domain.ExchangeRate{FromCurrencyCode: pair.FromCurrencyCode, ToCurrencyCode: pair.ToCurrencyCode, Rate: decimal.NewFromInt(1)}, nil
	}

	direct, err := r.latestRow(ctx, pair)
	if err == nil {
		rate := mapping.ToDomainExchangeRate(*direct)
		return &rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	inverse, err := r.latestRow(ctx, pair.Inverse())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + pair.String())
		}
		return nil, err
	}
	if inverse.Rate.IsZero() {
		return nil, apperrors.NewNotFoundError("inverse exchange rate is zero for " + pair.Inverse().String())
	}
	rate := mapping.ToDomainInverseRate(*inverse)
	return &rate, nil
}

func (r *PgxExchangeRateRepository) latestRow(ctx context.Context, pair models.CurrencyPair) (*models.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, pair.FromCurrencyCode, pair.ToCurrencyCode).Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode,
		&m.Rate, &m.DateEffective, &m.CreatedAt,
		&m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, storageError(err, "failed to find exchange rate")
	}
	return &m, nil
}
