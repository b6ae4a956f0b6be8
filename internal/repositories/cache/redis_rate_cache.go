package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

const rateKeyPrefix = "pos_ledger:rate:"

// RedisRateCache stores current exchange rates as decimal strings with a TTL.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ portsrepo.RateCache = (*RedisRateCache)(nil)

func NewRedisRateCache(addr, password string, db int, ttl time.Duration) *RedisRateCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisRateCache{client: client, ttl: ttl}
}

func (c *RedisRateCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisRateCache) Close() error {
	return c.client.Close()
}

func rateKey(from, to string) string {
	return rateKeyPrefix + strings.ToUpper(from) + ":" + strings.ToUpper(to)
}

func (c *RedisRateCache) Get(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, rateKey(from, to)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt cached rate %q: %w", val, err)
	}
	return rate, true, nil
}

func (c *RedisRateCache) Set(ctx context.Context, from, to string, rate decimal.Decimal) error {
	return c.client.Set(ctx, rateKey(from, to), rate.String(), c.ttl).Err()
}

func (c *RedisRateCache) Delete(ctx context.Context, from, to string) error {
	return c.client.Del(ctx, rateKey(from, to)).Err()
}
