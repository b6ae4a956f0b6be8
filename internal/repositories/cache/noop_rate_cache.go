package cache

import (
	"context"

	"github.com/shopspring/decimal"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// NoopRateCache never hits. Used when no Redis address is configured.
type NoopRateCache struct{}

var _ portsrepo.RateCache = NoopRateCache{}

func (NoopRateCache) Get(_ context.Context, _, _ string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (NoopRateCache) Set(_ context.Context, _, _ string, _ decimal.Decimal) error {
	return nil
}

func (NoopRateCache) Delete(_ context.Context, _, _ string) error {
	return nil
}
