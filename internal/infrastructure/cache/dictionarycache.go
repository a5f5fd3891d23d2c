package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"etraxis/internal/shared/logger"
)

const (
	dictionaryKeyPrefix = "dictionary:"
	dictionaryTTL       = 24 * time.Hour
)

// valuePool is the common shape of the three dictionary pools.
type valuePool interface {
	GetOrCreate(ctx context.Context, value string) (uint, error)
	GetByID(ctx context.Context, id uint) (string, error)
}

// ValueCache is a read-through Redis cache in front of a dictionary pool.
// Pool rows are immutable once written, so cached entries never go stale;
// the TTL only bounds memory. Cache failures degrade to the underlying pool.
type ValueCache struct {
	inner  valuePool
	client *redis.Client
	prefix string
}

// NewValueCache wraps a dictionary pool with a Redis cache. The name keys
// the cache per pool ("decimal", "string", "text").
func NewValueCache(inner valuePool, client *redis.Client, name string) *ValueCache {
	return &ValueCache{
		inner:  inner,
		client: client,
		prefix: dictionaryKeyPrefix + name + ":",
	}
}

func (c *ValueCache) key(id uint) string {
	return c.prefix + strconv.FormatUint(uint64(id), 10)
}

// GetOrCreate delegates to the pool and primes the cache with the result.
func (c *ValueCache) GetOrCreate(ctx context.Context, value string) (uint, error) {
	id, err := c.inner.GetOrCreate(ctx, value)
	if err != nil {
		return 0, err
	}

	c.client.Set(ctx, c.key(id), value, dictionaryTTL)
	return id, nil
}

func (c *ValueCache) GetByID(ctx context.Context, id uint) (string, error) {
	cached, err := c.client.Get(ctx, c.key(id)).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		logger.Warn("dictionary cache read failed", "error", err, "key", c.key(id))
	}

	value, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	c.client.Set(ctx, c.key(id), value, dictionaryTTL)
	return value, nil
}
