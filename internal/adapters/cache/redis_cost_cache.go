package cache

import (
	"context"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCostCache stores computed minimum costs in Redis.
// Keys are expected to be canonical (see domain.Order.Key) and already
// scoped to a catalog by the caller.
type RedisCostCache struct {
	Client *redis.Client
}

func NewRedisCostCache(client *redis.Client) *RedisCostCache {
	return &RedisCostCache{Client: client}
}

// NewRedisCostCacheFromURL parses a redis:// URL and verifies the server is reachable.
func NewRedisCostCacheFromURL(ctx context.Context, url string) (*RedisCostCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis cost cache: parse url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis cost cache: ping: %w", err)
	}

	return &RedisCostCache{Client: client}, nil
}

// Fetch a cached cost. A missing key is not an error.
func (c *RedisCostCache) Get(ctx context.Context, key string) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "cost.cache.Get")(&err)

	if c.Client == nil {
		return 0, false, errors.New("cost cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return 0, false, errors.New("get cost cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get cost cache: %w", err)
	}

	cost, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get cost cache: parse value for %q: %w", key, err)
	}

	return cost, true, nil
}

// Store a cost. A zero ttl keeps the entry until evicted.
func (c *RedisCostCache) Put(ctx context.Context, key string, cost float64, ttl time.Duration) error {
	if c.Client == nil {
		return errors.New("cost cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert cost cache: key must not be empty")
	}

	if err := c.Client.Set(ctx, key, strconv.FormatFloat(cost, 'g', -1, 64), ttl).Err(); err != nil {
		return fmt.Errorf("insert cost cache key=%q: %w", key, err)
	}

	return nil
}

func (c *RedisCostCache) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
